package tenhou

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gomahjong/internal/mjcache"
)

// Archive persists imported Records to MongoDB, one document per log,
// with a Redis-backed hot-read cache in front of lookups by log ID.
type Archive struct {
	coll  *mongo.Collection
	cache *mjcache.Distributed
	ttl   time.Duration
}

// NewArchive connects to uri and opens database/collection "records".
func NewArchive(ctx context.Context, uri, database string, cache *mjcache.Distributed) (*Archive, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("tenhou: connect to mongo at %s: %w", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("tenhou: ping mongo: %w", err)
	}
	coll := client.Database(database).Collection("records")
	return &Archive{coll: coll, cache: cache, ttl: 30 * time.Minute}, nil
}

// Store inserts rec, overwriting any existing document with the same
// Tenhou log ID.
func (a *Archive) Store(ctx context.Context, rec *Record) error {
	var existing Record
	if err := a.coll.FindOne(ctx, bson.M{"log_id": rec.LogID}, options.FindOne().SetProjection(bson.M{"_id": 1})).Decode(&existing); err == nil {
		rec.ID = existing.ID // a replacement may not change the stored document's _id
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("tenhou: look up record %s: %w", rec.LogID, err)
	}
	_, err := a.coll.ReplaceOne(ctx, bson.M{"log_id": rec.LogID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("tenhou: store record %s: %w", rec.LogID, err)
	}
	if a.cache != nil {
		payload, err := json.Marshal(rec)
		if err == nil {
			_ = a.cache.Set(ctx, cacheKey(rec.LogID), string(payload), a.ttl)
		}
	}
	return nil
}

// FindByLogID returns the record for logID, checking the distributed
// cache before falling back to MongoDB.
func (a *Archive) FindByLogID(ctx context.Context, logID string) (*Record, error) {
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, cacheKey(logID)); err == nil {
			var rec Record
			if jsonErr := json.Unmarshal([]byte(cached), &rec); jsonErr == nil {
				return &rec, nil
			}
		}
	}

	var rec Record
	if err := a.coll.FindOne(ctx, bson.M{"log_id": logID}).Decode(&rec); err != nil {
		return nil, fmt.Errorf("tenhou: find record %s: %w", logID, err)
	}
	if a.cache != nil {
		if payload, err := json.Marshal(&rec); err == nil {
			_ = a.cache.Set(ctx, cacheKey(logID), string(payload), a.ttl)
		}
	}
	return &rec, nil
}

func cacheKey(logID string) string { return "tenhou:record:" + logID }
