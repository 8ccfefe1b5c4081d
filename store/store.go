// Package store is the data-access layer: typed, owner-scoped wrappers
// around the MongoDB collections backing posts, notes and users. Handlers
// depend on the interfaces so tests can inject fakes.
package store

import (
	"context"
	"errors"
	"time"

	"contentcal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound   = errors.New("store: not found")
	ErrEmailTaken = errors.New("store: email already in use")
)

// PostChange carries the fields of a partial update. Nil fields are left
// untouched; a non-nil empty ImageURLs clears the attachments.
type PostChange struct {
	Title         *string
	ImageURLs     *[]string
	Platform      *models.Platform
	ScheduledDate *time.Time
	Status        *models.Status
}

type PostStore interface {
	// Create inserts the post, assigning id and timestamps. The stored post
	// is returned.
	Create(ctx context.Context, post models.Post) (models.Post, error)
	// Get returns one post owned by userID.
	Get(ctx context.Context, userID, id primitive.ObjectID) (models.Post, error)
	// ListByUser returns the user's posts ordered by scheduled date ascending.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error)
	// Update merges change into the post owned by userID and returns the
	// updated document.
	Update(ctx context.Context, userID, id primitive.ObjectID, change PostChange) (models.Post, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

type NoteStore interface {
	Create(ctx context.Context, userID primitive.ObjectID, content string) (models.Note, error)
	// ListByUser returns the user's notes ordered by creation time descending.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, content string) (models.Note, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

type UserStore interface {
	// Create inserts a user, returning ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}
