package storage

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBackend stores one document per key in a single collection:
// {key: <key>, value: <raw JSON as string>, updatedAt}.
type MongoBackend struct {
	col *mongo.Collection
}

type mongoEntry struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}

func NewMongoBackend(col *mongo.Collection) *MongoBackend {
	// ensure an index on "key" (keys are unique by contract)
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoBackend{col: col}
}

func (m *MongoBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	var e mongoEntry
	if err := m.col.FindOne(ctx, bson.M{"key": key}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(e.Value), nil
}

func (m *MongoBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	filter := bson.M{"key": key}
	opts := options.Update().SetUpsert(true)
	rec := bson.M{"$set": bson.M{"key": key, "value": string(value)}, "$currentDate": bson.M{"updatedAt": true}}
	_, err := m.col.UpdateOne(ctx, filter, rec, opts)
	return err
}
