package handlers_test

import (
	"context"
	"io"
	"time"

	"contentcal/models"
	"contentcal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) Create(_ context.Context, email, passwordHash string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return models.User{}, store.ErrEmailTaken
		}
	}
	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

type fakePostStore struct {
	posts []models.Post
	calls int
}

func (f *fakePostStore) Create(_ context.Context, post models.Post) (models.Post, error) {
	f.calls++
	post.ID = primitive.NewObjectID()
	now := time.Now().Unix()
	post.CreatedAt = now
	post.UpdatedAt = now
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakePostStore) Get(_ context.Context, userID, id primitive.ObjectID) (models.Post, error) {
	f.calls++
	for _, p := range f.posts {
		if p.ID == id && p.UserID == userID {
			return p, nil
		}
	}
	return models.Post{}, store.ErrNotFound
}

func (f *fakePostStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	f.calls++
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
		return f.posts[i], nil
	}
	return models.Post{}, store.ErrNotFound
}

func (f *fakePostStore) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	f.calls++
	for i := range f.posts {
		if f.posts[i].ID == id && f.posts[i].UserID == userID {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeNoteStore struct {
	notes []models.Note
	calls int
}

func (f *fakeNoteStore) Create(_ context.Context, userID primitive.ObjectID, content string) (models.Note, error) {
	f.calls++
	note := models.Note{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	f.notes = append(f.notes, note)
	return note, nil
}

func (f *fakeNoteStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	f.calls++
	var out []models.Note
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) Update(_ context.Context, userID, id primitive.ObjectID, content string) (models.Note, error) {
	f.calls++
	for i := range f.notes {
		if f.notes[i].ID == id && f.notes[i].UserID == userID {
			f.notes[i].Content = content
			return f.notes[i], nil
		}
	}
	return models.Note{}, store.ErrNotFound
}

func (f *fakeNoteStore) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	f.calls++
	for i := range f.notes {
		if f.notes[i].ID == id && f.notes[i].UserID == userID {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeImageStorage struct {
	deleted []string
}

func (f *fakeImageStorage) Upload(_ context.Context, _ io.Reader, filename, ownerID string) (string, error) {
	return "https://img.example.com/" + ownerID + "/" + filename, nil
}

func (f *fakeImageStorage) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}
