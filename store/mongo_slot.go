package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoSlot persists values as documents of the "slots" collection.
type MongoSlot struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoSlot uses db.slots. The slot owns client and disconnects it on Close.
func NewMongoSlot(client *mongo.Client, database string) *MongoSlot {
	return &MongoSlot{
		client:     client,
		collection: client.Database(database).Collection("slots"),
	}
}

func (m *MongoSlot) Read(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc slotDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Data, true, nil
}

func (m *MongoSlot) Write(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	doc := slotDocument{Key: key, Data: data, UpdatedAt: time.Now()}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoSlot) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
