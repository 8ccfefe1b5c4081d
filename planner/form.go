package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"contentcal/models"
	"contentcal/storage"
	"contentcal/store"
)

// FormMode is the editor dialog state.
type FormMode string

const (
	ModeCreating FormMode = "creating" // no backing post
	ModeViewing  FormMode = "viewing"  // existing post, read-only
	ModeEditing  FormMode = "editing"  // existing post, mutable
)

var (
	ErrFormClosed   = errors.New("planner: form is closed")
	ErrNotEditable  = errors.New("planner: form is read-only")
	ErrInvalidPost  = errors.New("planner: post needs a title or at least one image")
	ErrBadPlatform  = errors.New("planner: unknown platform")
	ErrBadStatus    = errors.New("planner: unknown status")
	ErrNoBackedPost = errors.New("planner: no post behind this form")
)

// Form is the post editor: a dialog opened either empty (Creating) or on an
// existing post (Viewing, then Editing after an explicit Edit). There is no
// dirty-state guard; Cancel discards edits unconditionally.
type Form struct {
	mode FormMode
	open bool
	post *models.Post // nil while creating

	Title         string
	ImageURLs     []string
	Platform      models.Platform
	ScheduledDate time.Time
	Status        models.Status
}

// OpenForm opens the editor. With a nil post it enters Creating; otherwise
// it enters Viewing on a copy of the post's fields.
func OpenForm(post *models.Post) *Form {
	f := &Form{open: true}
	if post == nil {
		f.mode = ModeCreating
		f.Status = models.StatusDraft
		return f
	}
	p := *post
	f.mode = ModeViewing
	f.post = &p
	f.loadFields()
	return f
}

func (f *Form) loadFields() {
	f.Title = f.post.Title
	f.ImageURLs = append([]string(nil), f.post.ImageURLs...)
	f.Platform = f.post.Platform
	f.ScheduledDate = f.post.ScheduledDate
	f.Status = f.post.Status
}

func (f *Form) Mode() FormMode { return f.mode }
func (f *Form) IsOpen() bool   { return f.open }

// Edit moves Viewing to Editing.
func (f *Form) Edit() error {
	if !f.open {
		return ErrFormClosed
	}
	if f.mode != ModeViewing {
		return fmt.Errorf("planner: cannot edit from %s", f.mode)
	}
	f.mode = ModeEditing
	return nil
}

// Cancel returns to Viewing when a post backs the form, restoring its
// fields; otherwise it closes the dialog.
func (f *Form) Cancel() {
	if !f.open {
		return
	}
	if f.post != nil {
		f.mode = ModeViewing
		f.loadFields()
		return
	}
	f.open = false
}

// CanSave reports whether the current fields pass validation: a valid
// platform and status, and a non-empty title or at least one image.
func (f *Form) CanSave() bool {
	return f.validate() == nil
}

func (f *Form) validate() error {
	return ValidatePost(f.Title, f.ImageURLs, f.Platform, f.Status)
}

// ValidatePost is the single submission rule, applied at the form boundary
// rather than the backend: text-only posts are allowed, but a post needs a
// non-empty title or at least one image, plus a known platform and status.
func ValidatePost(title string, imageURLs []string, platform models.Platform, status models.Status) error {
	if strings.TrimSpace(title) == "" && len(imageURLs) == 0 {
		return ErrInvalidPost
	}
	if !platform.Valid() {
		return ErrBadPlatform
	}
	if !status.Valid() {
		return ErrBadStatus
	}
	return nil
}

// Save persists the form through the collection and closes the dialog on
// success. From Creating it creates; from Editing it updates the backing
// post. Viewing cannot save.
func (f *Form) Save(ctx context.Context, c *Collection) (models.Post, error) {
	if !f.open {
		return models.Post{}, ErrFormClosed
	}
	if f.mode == ModeViewing {
		return models.Post{}, ErrNotEditable
	}
	if err := f.validate(); err != nil {
		return models.Post{}, err
	}

	var (
		saved models.Post
		err   error
	)
	if f.mode == ModeCreating {
		saved, err = c.Create(ctx, models.Post{
			Title:         strings.TrimSpace(f.Title),
			ImageURLs:     f.ImageURLs,
			Platform:      f.Platform,
			ScheduledDate: f.ScheduledDate,
			Status:        f.Status,
		})
	} else {
		title := strings.TrimSpace(f.Title)
		urls := f.ImageURLs
		saved, err = c.Update(ctx, f.post.ID, store.PostChange{
			Title:         &title,
			ImageURLs:     &urls,
			Platform:      &f.Platform,
			ScheduledDate: &f.ScheduledDate,
			Status:        &f.Status,
		})
	}
	if err != nil {
		return models.Post{}, err
	}
	f.open = false
	return saved, nil
}

// Delete removes the backing post through the collection and closes the
// dialog. Available from Viewing and Editing.
func (f *Form) Delete(ctx context.Context, c *Collection) error {
	if !f.open {
		return ErrFormClosed
	}
	if f.post == nil {
		return ErrNoBackedPost
	}
	if err := c.Delete(ctx, f.post.ID); err != nil {
		return err
	}
	f.open = false
	return nil
}

// AttachImage uploads the file and, on success, appends the returned URL to
// the form. A failed upload leaves the already-attached images intact.
func (f *Form) AttachImage(ctx context.Context, images storage.ImageStorage, file io.Reader, filename string, ownerID string) (string, error) {
	if !f.open {
		return "", ErrFormClosed
	}
	if f.mode == ModeViewing {
		return "", ErrNotEditable
	}
	url, err := images.Upload(ctx, file, filename, ownerID)
	if err != nil {
		return "", err
	}
	f.ImageURLs = append(f.ImageURLs, url)
	return url, nil
}

// RemoveImage deletes the stored file and drops the URL from the form. If
// the storage delete fails the URL is retained, and saving is not blocked.
func (f *Form) RemoveImage(ctx context.Context, images storage.ImageStorage, url string) error {
	if !f.open {
		return ErrFormClosed
	}
	if f.mode == ModeViewing {
		return ErrNotEditable
	}
	if err := images.Delete(ctx, url); err != nil {
		return err
	}
	for i, u := range f.ImageURLs {
		if u == url {
			f.ImageURLs = append(f.ImageURLs[:i], f.ImageURLs[i+1:]...)
			break
		}
	}
	return nil
}
