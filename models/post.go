package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Platform is the social network a post targets.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTwitter, PlatformLinkedIn:
		return true
	}
	return false
}

// Status is user-set only; nothing in the system transitions it automatically.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Title         string             `bson:"title" json:"title"`
	ImageURLs     []string           `bson:"imageUrls" json:"imageUrls"`
	Platform      Platform           `bson:"platform" json:"platform"`
	ScheduledDate time.Time          `bson:"scheduledDate" json:"scheduledDate"`
	Status        Status             `bson:"status" json:"status"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt     int64              `bson:"updatedAt" json:"updatedAt"`
}
