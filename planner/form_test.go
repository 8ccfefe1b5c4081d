package planner_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"contentcal/models"
	"contentcal/planner"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func existingPost() models.Post {
	return models.Post{
		ID:            primitive.NewObjectID(),
		Title:         "spring campaign",
		ImageURLs:     []string{"https://img.example.com/a.png"},
		Platform:      models.PlatformFacebook,
		ScheduledDate: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
		Status:        models.StatusScheduled,
	}
}

func TestOpenForm_Modes(t *testing.T) {
	if got := planner.OpenForm(nil).Mode(); got != planner.ModeCreating {
		t.Errorf("open without post: mode = %s, want creating", got)
	}

	post := existingPost()
	f := planner.OpenForm(&post)
	if f.Mode() != planner.ModeViewing {
		t.Errorf("open with post: mode = %s, want viewing", f.Mode())
	}
	if f.Title != post.Title || len(f.ImageURLs) != 1 {
		t.Error("form did not copy the post's fields")
	}
}

func TestEdit_OnlyFromViewing(t *testing.T) {
	post := existingPost()
	f := planner.OpenForm(&post)
	if err := f.Edit(); err != nil {
		t.Fatalf("edit from viewing: %v", err)
	}
	if f.Mode() != planner.ModeEditing {
		t.Errorf("mode = %s, want editing", f.Mode())
	}

	if err := planner.OpenForm(nil).Edit(); err == nil {
		t.Error("edit from creating should fail")
	}
}

func TestCancel_RestoresViewing(t *testing.T) {
	post := existingPost()
	f := planner.OpenForm(&post)
	f.Edit()
	f.Title = "scribbled over"

	f.Cancel()
	if f.Mode() != planner.ModeViewing {
		t.Errorf("mode after cancel = %s, want viewing", f.Mode())
	}
	if f.Title != post.Title {
		t.Errorf("cancel kept unsaved edits: %q", f.Title)
	}
	if !f.IsOpen() {
		t.Error("cancel with a backing post should not close the dialog")
	}
}

func TestCancel_ClosesWhenCreating(t *testing.T) {
	f := planner.OpenForm(nil)
	f.Cancel()
	if f.IsOpen() {
		t.Error("cancel while creating should close the dialog")
	}
}

func TestSave_CreatesAndCloses(t *testing.T) {
	c, _, _ := newCollection(t)

	f := planner.OpenForm(nil)
	f.Title = "  new launch  "
	f.Platform = models.PlatformTwitter
	f.ScheduledDate = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	f.Status = models.StatusDraft

	saved, err := f.Save(context.Background(), c)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Title != "new launch" {
		t.Errorf("title not trimmed: %q", saved.Title)
	}
	if f.IsOpen() {
		t.Error("dialog still open after save")
	}
	if len(c.Posts()) != 1 {
		t.Errorf("collection holds %d posts, want 1", len(c.Posts()))
	}
}

func TestSave_FailureKeepsDialogOpen(t *testing.T) {
	c, fake, _ := newCollection(t)
	fake.fail = true

	f := planner.OpenForm(nil)
	f.Title = "doomed"
	f.Platform = models.PlatformInstagram

	if _, err := f.Save(context.Background(), c); err == nil {
		t.Fatal("expected backend error")
	}
	if !f.IsOpen() {
		t.Error("failed save closed the dialog")
	}
	if len(c.Posts()) != 0 {
		t.Error("failed save mutated the collection")
	}
}

func TestSave_RejectsViewing(t *testing.T) {
	c, _, _ := newCollection(t)
	post := existingPost()
	f := planner.OpenForm(&post)
	if _, err := f.Save(context.Background(), c); err == nil {
		t.Error("save from viewing should fail")
	}
}

func TestValidation_TitleOrImageRequired(t *testing.T) {
	f := planner.OpenForm(nil)
	f.Platform = models.PlatformInstagram
	f.Status = models.StatusDraft

	f.Title = "   "
	if f.CanSave() {
		t.Error("whitespace title with no image should not be savable")
	}

	f.ImageURLs = []string{"https://img.example.com/x.png"}
	if !f.CanSave() {
		t.Error("image-only post should be savable")
	}

	f.ImageURLs = nil
	f.Title = "text only"
	if !f.CanSave() {
		t.Error("text-only post should be savable")
	}
}

func TestValidation_Platform(t *testing.T) {
	f := planner.OpenForm(nil)
	f.Title = "x"
	f.Status = models.StatusDraft
	f.Platform = "tiktok"
	if f.CanSave() {
		t.Error("unknown platform should be rejected")
	}
}

func TestDelete_ClosesDialog(t *testing.T) {
	c, _, _ := newCollection(t)
	created, _ := c.Create(context.Background(), draft("bye", time.Now()))

	f := planner.OpenForm(&created)
	if err := f.Delete(context.Background(), c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if f.IsOpen() {
		t.Error("dialog still open after delete")
	}
	if len(c.Posts()) != 0 {
		t.Error("post still in collection after delete")
	}
}

func TestAttachImage_AccumulatesURLs(t *testing.T) {
	images := &fakeImageStorage{}
	f := planner.OpenForm(nil)

	url, err := f.AttachImage(context.Background(), images, strings.NewReader("png"), "shot.png", "owner1")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(f.ImageURLs) != 1 || f.ImageURLs[0] != url {
		t.Errorf("form images = %v, want [%s]", f.ImageURLs, url)
	}
}

func TestAttachImage_UploadFailureLeavesListIntact(t *testing.T) {
	images := &fakeImageStorage{}
	f := planner.OpenForm(nil)
	f.AttachImage(context.Background(), images, strings.NewReader("a"), "a.png", "owner1")

	images.failUpload = true
	if _, err := f.AttachImage(context.Background(), images, strings.NewReader("b"), "b.png", "owner1"); err == nil {
		t.Fatal("expected upload error")
	}
	if len(f.ImageURLs) != 1 {
		t.Errorf("failed upload corrupted the list: %v", f.ImageURLs)
	}
}

func TestRemoveImage_DeleteFailureRetainsURL(t *testing.T) {
	images := &fakeImageStorage{}
	f := planner.OpenForm(nil)
	url, _ := f.AttachImage(context.Background(), images, strings.NewReader("a"), "a.png", "owner1")

	images.failDelete = true
	if err := f.RemoveImage(context.Background(), images, url); err == nil {
		t.Fatal("expected delete error")
	}
	if len(f.ImageURLs) != 1 {
		t.Error("failed delete removed the URL from the form")
	}

	images.failDelete = false
	if err := f.RemoveImage(context.Background(), images, url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(f.ImageURLs) != 0 {
		t.Error("URL retained after successful delete")
	}
}

func TestRemoveLastImage_GatesSaveUntilContentReturns(t *testing.T) {
	images := &fakeImageStorage{}
	f := planner.OpenForm(nil)
	f.Platform = models.PlatformLinkedIn
	f.Status = models.StatusDraft
	url, _ := f.AttachImage(context.Background(), images, strings.NewReader("a"), "a.png", "owner1")

	if !f.CanSave() {
		t.Fatal("image-only form should be savable")
	}
	f.RemoveImage(context.Background(), images, url)
	if f.CanSave() {
		t.Error("removing the only image should disable submission")
	}

	f.AttachImage(context.Background(), images, strings.NewReader("b"), "b.png", "owner1")
	if !f.CanSave() {
		t.Error("attaching a new image should re-enable submission")
	}
}
