package realtime

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Snapshot is a full, ordered copy of a collection's current documents,
// delivered on every change. Consumers must treat Docs as read-only.
type Snapshot struct {
	Collection string
	Docs       []bson.M
	At         time.Time
}

// Subscriber watches one collection through a change stream and emits a
// fresh Snapshot on every change. The stream is torn down when the given
// context is cancelled.
type Subscriber struct {
	coll    *mongo.Collection
	orderBy bson.D
	updates chan Snapshot
	cancel  context.CancelFunc
}

// Subscribe delivers an initial snapshot immediately, then one per change
// event. orderBy is the store's declared sort attribute ("" keeps natural
// order); desc flips it.
func Subscribe(parent context.Context, coll *mongo.Collection, orderBy string, desc bool) *Subscriber {
	ctx, cancel := context.WithCancel(parent)
	order := 1
	if desc {
		order = -1
	}
	var sort bson.D
	if orderBy != "" {
		sort = bson.D{{Key: orderBy, Value: order}}
	}
	s := &Subscriber{
		coll:    coll,
		orderBy: sort,
		updates: make(chan Snapshot, 1),
		cancel:  cancel,
	}
	go s.run(ctx)
	return s
}

// Updates is the ordered stream of full-collection snapshots.
func (s *Subscriber) Updates() <-chan Snapshot {
	return s.updates
}

// Close tears the subscription down so no further callbacks run against a
// dismantled consumer.
func (s *Subscriber) Close() {
	s.cancel()
}

func (s *Subscriber) run(ctx context.Context) {
	defer close(s.updates)
	s.publish(ctx)
	for ctx.Err() == nil {
		stream, err := s.coll.Watch(ctx, mongo.Pipeline{},
			options.ChangeStream().SetFullDocument(options.UpdateLookup))
		if err != nil {
			// keep the last-known snapshot, do not flash an empty state
			log.Printf("change stream open failed on %s: %v", s.coll.Name(), err)
			if !sleepCtx(ctx, 5*time.Second) {
				return
			}
			continue
		}
		for stream.Next(ctx) {
			s.publish(ctx)
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.Printf("change stream error on %s: %v", s.coll.Name(), err)
		}
		stream.Close(context.Background())
		if !sleepCtx(ctx, time.Second) {
			return
		}
	}
}

func (s *Subscriber) publish(ctx context.Context) {
	opts := options.Find()
	if s.orderBy != nil {
		opts.SetSort(s.orderBy)
	}
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("snapshot fetch failed on %s: %v", s.coll.Name(), err)
		return
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		log.Printf("snapshot decode failed on %s: %v", s.coll.Name(), err)
		return
	}
	snap := Snapshot{Collection: s.coll.Name(), Docs: docs, At: time.Now()}
	// replace a pending snapshot instead of blocking the stream loop
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- snap:
	case <-ctx.Done():
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
