package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBackend stores every collection as one document
// {_id: <name>, records: [...]} so a replace is a single atomic upsert.
// MongoDB caps documents at 16MB, which bounds how many inline images a
// collection can hold.
type MongoBackend struct {
	client      *mongo.Client
	collections *mongo.Collection
}

type collectionDoc struct {
	Name    string     `bson:"_id"`
	Records []bson.Raw `bson:"records"`
}

func NewMongoBackend(ctx context.Context, uri, database string) (*MongoBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &MongoBackend{
		client:      client,
		collections: client.Database(database).Collection("collections"),
	}, nil
}

func (b *MongoBackend) Load(ctx context.Context, name string) ([]json.RawMessage, error) {
	var doc collectionDoc
	err := b.collections.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]json.RawMessage, 0, len(doc.Records))
	for i, rec := range doc.Records {
		js, err := bson.MarshalExtJSON(rec, false, false)
		if err != nil {
			return nil, fmt.Errorf("convert %s[%d]: %w", name, i, err)
		}
		out = append(out, js)
	}
	return out, nil
}

func (b *MongoBackend) Replace(ctx context.Context, name string, records []json.RawMessage) error {
	docs := make([]bson.D, 0, len(records))
	for i, rec := range records {
		var d bson.D
		if err := bson.UnmarshalExtJSON(rec, false, &d); err != nil {
			return fmt.Errorf("convert %s[%d]: %w", name, i, err)
		}
		docs = append(docs, d)
	}

	_, err := b.collections.ReplaceOne(ctx,
		bson.M{"_id": name},
		bson.M{"_id": name, "records": docs},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (b *MongoBackend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
