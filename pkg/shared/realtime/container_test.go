package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestContainerLatestBeforeAnySnapshot(t *testing.T) {
	c := NewContainer()
	_, ok := c.Latest("projects")
	assert.False(t, ok)
}

func TestContainerApplyReplacesWholeSnapshot(t *testing.T) {
	c := NewContainer()
	c.Apply(Snapshot{Collection: "projects", Docs: []bson.M{{"_id": "a"}}, At: time.Now()})
	c.Apply(Snapshot{Collection: "projects", Docs: []bson.M{{"_id": "b"}, {"_id": "c"}}, At: time.Now()})

	snap, ok := c.Latest("projects")
	require.True(t, ok)
	require.Len(t, snap.Docs, 2)
	assert.Equal(t, "b", snap.Docs[0]["_id"])
}

func TestContainerKeepsCollectionsSeparate(t *testing.T) {
	c := NewContainer()
	c.Apply(Snapshot{Collection: "projects", Docs: []bson.M{{"_id": "p"}}})
	c.Apply(Snapshot{Collection: "workSessions", Docs: []bson.M{{"_id": "w"}}})

	p, ok := c.Latest("projects")
	require.True(t, ok)
	assert.Equal(t, "p", p.Docs[0]["_id"])

	w, ok := c.Latest("workSessions")
	require.True(t, ok)
	assert.Equal(t, "w", w.Docs[0]["_id"])
}

// A failed refresh never overwrites the last-known state; only Apply does.
func TestContainerRetainsLastKnownSnapshot(t *testing.T) {
	c := NewContainer()
	c.Apply(Snapshot{Collection: "chatMessages", Docs: []bson.M{{"_id": "m1"}}})

	snap, ok := c.Latest("chatMessages")
	require.True(t, ok)
	assert.Len(t, snap.Docs, 1)

	// reading twice yields the same snapshot
	again, ok := c.Latest("chatMessages")
	require.True(t, ok)
	assert.Equal(t, snap, again)
}
