package planner_test

import (
	"context"
	"errors"
	"io"
	"time"

	"contentcal/models"
	"contentcal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBackend = errors.New("backend unavailable")

// fakePostStore keeps posts in a slice and can be told to fail.
type fakePostStore struct {
	posts []models.Post
	fail  bool
	calls int
}

func (f *fakePostStore) Create(_ context.Context, post models.Post) (models.Post, error) {
	f.calls++
	if f.fail {
		return models.Post{}, errBackend
	}
	now := time.Now().Unix()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakePostStore) Get(_ context.Context, userID, id primitive.ObjectID) (models.Post, error) {
	f.calls++
	if f.fail {
		return models.Post{}, errBackend
	}
	for _, p := range f.posts {
		if p.ID == id && p.UserID == userID {
			return p, nil
		}
	}
	return models.Post{}, store.ErrNotFound
}

func (f *fakePostStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	f.calls++
	if f.fail {
		return nil, errBackend
	}
	var out []models.Post
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostStore) Update(_ context.Context, userID, id primitive.ObjectID, change store.PostChange) (models.Post, error) {
	f.calls++
	if f.fail {
		return models.Post{}, errBackend
	}
	for i := range f.posts {
		if f.posts[i].ID != id || f.posts[i].UserID != userID {
			continue
		}
		if change.Title != nil {
			f.posts[i].Title = *change.Title
		}
		if change.ImageURLs != nil {
			f.posts[i].ImageURLs = *change.ImageURLs
		}
		if change.Platform != nil {
			f.posts[i].Platform = *change.Platform
		}
		if change.ScheduledDate != nil {
			f.posts[i].ScheduledDate = *change.ScheduledDate
		}
		if change.Status != nil {
			f.posts[i].Status = *change.Status
		}
		f.posts[i].UpdatedAt = time.Now().Unix()
		return f.posts[i], nil
	}
	return models.Post{}, store.ErrNotFound
}

func (f *fakePostStore) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	f.calls++
	if f.fail {
		return errBackend
	}
	for i := range f.posts {
		if f.posts[i].ID == id && f.posts[i].UserID == userID {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeImageStorage records uploads/deletes and can fail either operation.
type fakeImageStorage struct {
	uploaded   []string
	deleted    []string
	failUpload bool
	failDelete bool
}

func (f *fakeImageStorage) Upload(_ context.Context, _ io.Reader, filename, ownerID string) (string, error) {
	if f.failUpload {
		return "", errBackend
	}
	url := "https://img.example.com/" + ownerID + "/" + filename
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeImageStorage) Delete(_ context.Context, url string) error {
	if f.failDelete {
		return errBackend
	}
	f.deleted = append(f.deleted, url)
	return nil
}
