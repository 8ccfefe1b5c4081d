// Package planner keeps the signed-in user's posts in memory and runs the
// editor workflow over them. Local state is a cache of backend state: every
// mutation goes to the store first and is applied locally only after the
// store confirms, so a failed call leaves the cache exactly as it was.
package planner

import (
	"context"
	"fmt"
	"time"

	"contentcal/calendar"
	"contentcal/models"
	"contentcal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection holds one user's posts plus the id of the post open in a
// detail view, if any.
type Collection struct {
	posts  store.PostStore
	userID primitive.ObjectID

	cached []models.Post
	openID primitive.ObjectID
}

func NewCollection(posts store.PostStore, userID primitive.ObjectID) *Collection {
	return &Collection{posts: posts, userID: userID}
}

// Load replaces the cache with the store's view of the user's posts,
// ordered by scheduled date ascending.
func (c *Collection) Load(ctx context.Context) error {
	posts, err := c.posts.ListByUser(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}
	c.cached = posts
	return nil
}

// Posts returns the cached posts. Creates append without re-sorting, so the
// slice is only date-ordered right after Load.
func (c *Collection) Posts() []models.Post {
	return c.cached
}

// Days buckets the cached posts onto the month grid around ref.
func (c *Collection) Days(ref time.Time) []models.CalendarDay {
	return calendar.Bucket(calendar.MonthDays(ref), c.cached)
}

func (c *Collection) Create(ctx context.Context, post models.Post) (models.Post, error) {
	post.UserID = c.userID
	created, err := c.posts.Create(ctx, post)
	if err != nil {
		return models.Post{}, err
	}
	c.cached = append(c.cached, created)
	return created, nil
}

func (c *Collection) Update(ctx context.Context, id primitive.ObjectID, change store.PostChange) (models.Post, error) {
	updated, err := c.posts.Update(ctx, c.userID, id, change)
	if err != nil {
		return models.Post{}, err
	}
	for i := range c.cached {
		if c.cached[i].ID == id {
			c.cached[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the post from the store, then from the cache. If the post
// was open in a detail view, the view closes.
func (c *Collection) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := c.posts.Delete(ctx, c.userID, id); err != nil {
		return err
	}
	for i := range c.cached {
		if c.cached[i].ID == id {
			c.cached = append(c.cached[:i], c.cached[i+1:]...)
			break
		}
	}
	if c.openID == id {
		c.openID = primitive.NilObjectID
	}
	return nil
}

// Reschedule moves the post onto target's calendar day, keeping its original
// time-of-day, and persists through the update path. Until the store
// confirms, nothing changes locally.
func (c *Collection) Reschedule(ctx context.Context, id primitive.ObjectID, target time.Time) (models.Post, error) {
	post, ok := c.find(id)
	if !ok {
		return models.Post{}, store.ErrNotFound
	}
	moved := calendar.Reschedule(post.ScheduledDate, target)
	return c.Update(ctx, id, store.PostChange{ScheduledDate: &moved})
}

// Open marks the post as shown in a detail view.
func (c *Collection) Open(id primitive.ObjectID) {
	c.openID = id
}

func (c *Collection) CloseView() {
	c.openID = primitive.NilObjectID
}

// OpenID returns the post open in a detail view, or NilObjectID.
func (c *Collection) OpenID() primitive.ObjectID {
	return c.openID
}

func (c *Collection) find(id primitive.ObjectID) (models.Post, bool) {
	for _, p := range c.cached {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}
