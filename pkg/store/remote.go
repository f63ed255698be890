package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tableflip.dev/daybook/pkg/entry"
)

// ErrWatchUnsupported is returned by the remote backend, which has no
// change-notification channel.
var ErrWatchUnsupported = errors.New("store: watch is not supported on the remote backend")

const (
	remoteConnectTimeout = 10 * time.Second
	entriesCollection    = "entries"
)

// loadRemote connects to the hosted MongoDB backend named by cfg.
func loadRemote(cfg Config) (Persistence, error) {
	ctx, cancel := context.WithTimeout(context.Background(), remoteConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.RemoteURI()))
	if err != nil {
		return nil, fmt.Errorf("store: connect remote: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping remote: %w", err)
	}

	r := &remote{coll: client.Database(cfg.RemoteDatabase()).Collection(entriesCollection)}
	if err := r.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

type remote struct {
	coll *mongo.Collection
}

func (r *remote) ensureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "mood", Value: 1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("store: create indexes: %w", err)
	}
	return nil
}

func (r *remote) MapAll(ctx context.Context) map[string]*entry.Entry {
	all := make(map[string]*entry.Entry)
	for _, e := range r.List(ctx) {
		all[e.Date] = e
	}
	return all
}

func (r *remote) List(ctx context.Context) []*entry.Entry {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: list entries: %v\n", err)
		return nil
	}
	defer cursor.Close(ctx)

	var entries []*entry.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode entries: %v\n", err)
		return nil
	}
	return entries
}

func (r *remote) Get(ctx context.Context, date string) (*entry.Entry, error) {
	var e entry.Entry
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find entry %s: %w", date, err)
	}
	return &e, nil
}

func (r *remote) Store(e *entry.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	if err := entry.ValidateDate(e.Date); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteConnectTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"date": e.Date}, e, opts); err != nil {
		return fmt.Errorf("store: upsert entry %s: %w", e.Date, err)
	}
	return nil
}

func (r *remote) Delete(date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), remoteConnectTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return fmt.Errorf("store: delete entry %s: %w", date, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *remote) Watch(context.Context) (<-chan Event, error) {
	return nil, ErrWatchUnsupported
}
