package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPageAndLimitDefaults(t *testing.T) {
	assert.Equal(t, int64(1), Page(""))
	assert.Equal(t, int64(3), Page("3"))
	assert.Equal(t, int64(200), Limit(""))
	assert.Equal(t, int64(25), Limit("25"))
}

func TestDocStringMissingKey(t *testing.T) {
	doc := bson.M{"title": "x"}
	assert.Equal(t, "x", DocString(doc, "title"))
	assert.Equal(t, "", DocString(doc, "absent"))
	assert.Equal(t, "", DocString(doc, "n"))
}

func TestDocTimeHandlesBothEncodings(t *testing.T) {
	ts := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, DocTime(bson.M{"at": ts}, "at"))
	assert.Equal(t, ts, DocTime(bson.M{"at": primitive.NewDateTimeFromTime(ts)}, "at").UTC())
	assert.True(t, DocTime(bson.M{}, "at").IsZero())
}

func TestDocIdFilterPlainString(t *testing.T) {
	f := DocIdFilter("abc-123")
	assert.Equal(t, "abc-123", f["_id"])
}

func TestDocIdFilterObjectIdHex(t *testing.T) {
	oid := primitive.NewObjectID()
	f := DocIdFilter(oid.Hex())
	assert.Equal(t, oid, f["_id"])
}

func TestNewShortIdNonEmpty(t *testing.T) {
	id := NewShortId()
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, NewShortId())
}
