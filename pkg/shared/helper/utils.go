package helper

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/teris-io/shortid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateDateObject walks a decoded JSON body and converts RFC3339 strings
// into time.Time values so they land in Mongo as real dates.
func UpdateDateObject(input map[string]interface{}) error {
	for k, v := range input {
		if v == nil {
			continue
		}
		ty := reflect.TypeOf(v).Kind().String()
		if ty == "string" {
			val := reflect.ValueOf(v).String()
			t, err := time.Parse(time.RFC3339, val)
			if err == nil {
				input[k] = t.UTC()
			}
		} else if ty == "map" {
			return UpdateDateObject(v.(map[string]interface{}))
		} else if ty == "slice" {
			for _, e := range v.([]interface{}) {
				if reflect.TypeOf(e).Kind().String() == "map" {
					return UpdateDateObject(e.(map[string]interface{}))
				}
			}
		}
	}
	return nil
}

func Toint64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func Page(s string) int64 {
	if s == "" || s == "0" {
		return Toint64("1")
	}
	return Toint64(s)
}

func ToString(input interface{}) string {
	return fmt.Sprintf("%v", input)
}

func SortOrdering(s string) int {
	switch s {
	case "1":
		return 1
	case "-1":
		return -1
	default:
		return 1
	}
}

func Limit(s string) int64 {
	if s == "" {
		s = GetenvStr("DEFAULT_FETCH_ROWS", "200")
	}
	return Toint64(s)
}

func DocIdFilter(id string) bson.M {
	if id == "" {
		return bson.M{}
	}
	docId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	} else {
		return bson.M{"_id": docId}
	}
}

// DocString reads a string field from a decoded document; missing or
// differently-typed values come back empty instead of panicking.
func DocString(doc bson.M, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

// DocTime reads a timestamp field, tolerating both driver date encodings.
func DocTime(doc bson.M, key string) time.Time {
	switch v := doc[key].(type) {
	case primitive.DateTime:
		return v.Time()
	case time.Time:
		return v
	}
	return time.Time{}
}

// NewDocId - opaque document key assigned at creation time
func NewDocId() string {
	return uuid.New().String()
}

// NewShortId - short key for storage object names
func NewShortId() string {
	id, err := shortid.Generate()
	if err != nil {
		return NewDocId()
	}
	return id
}
