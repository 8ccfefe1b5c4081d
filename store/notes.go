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

type MongoNoteStore struct {
	coll *mongo.Collection
}

func NewMongoNoteStore(db *mongo.Database) *MongoNoteStore {
	return &MongoNoteStore{coll: db.Collection("notes")}
}

func (s *MongoNoteStore) Create(ctx context.Context, userID primitive.ObjectID, content string) (models.Note, error) {
	note := models.Note{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if _, err := s.coll.InsertOne(ctx, note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *MongoNoteStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *MongoNoteStore) Update(ctx context.Context, userID, id primitive.ObjectID, content string) (models.Note, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note models.Note
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"content": content}},
		opts,
	).Decode(&note)
	if err == mongo.ErrNoDocuments {
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *MongoNoteStore) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
