package store

import (
	"context"
	"time"

	"contentcal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPostStore struct {
	coll *mongo.Collection
}

func NewMongoPostStore(db *mongo.Database) *MongoPostStore {
	return &MongoPostStore{coll: db.Collection("posts")}
}

// postDoc is the on-disk shape. Older documents carried a single imageUrl
// string instead of imageUrls; reads normalize both shapes so the rest of
// the system only ever sees ImageURLs.
type postDoc struct {
	models.Post    `bson:",inline"`
	LegacyImageURL string `bson:"imageUrl,omitempty"`
}

func (d postDoc) normalized() models.Post {
	p := d.Post
	if len(p.ImageURLs) == 0 && d.LegacyImageURL != "" {
		p.ImageURLs = []string{d.LegacyImageURL}
	}
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return p
}

func (s *MongoPostStore) Create(ctx context.Context, post models.Post) (models.Post, error) {
	now := time.Now().Unix()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.ImageURLs == nil {
		post.ImageURLs = []string{}
	}

	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *MongoPostStore) Get(ctx context.Context, userID, id primitive.ObjectID) (models.Post, error) {
	var doc postDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return doc.normalized(), nil
}

func (s *MongoPostStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	posts := make([]models.Post, len(docs))
	for i, doc := range docs {
		posts[i] = doc.normalized()
	}
	return posts, nil
}

func (s *MongoPostStore) Update(ctx context.Context, userID, id primitive.ObjectID, change PostChange) (models.Post, error) {
	set := bson.M{"updatedAt": time.Now().Unix()}
	if change.Title != nil {
		set["title"] = *change.Title
	}
	if change.ImageURLs != nil {
		set["imageUrls"] = *change.ImageURLs
	}
	if change.Platform != nil {
		set["platform"] = *change.Platform
	}
	if change.ScheduledDate != nil {
		set["scheduledDate"] = *change.ScheduledDate
	}
	if change.Status != nil {
		set["status"] = *change.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc postDoc
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return doc.normalized(), nil
}

func (s *MongoPostStore) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
