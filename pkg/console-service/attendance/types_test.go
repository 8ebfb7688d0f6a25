package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToSessionMissingPunchesStayNil(t *testing.T) {
	doc := bson.M{
		"employee_id":   "EMP01",
		"employee_name": "Asha",
		"status":        StatusWorking,
		"day":           "2024-06-15",
		"login_time":    time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}
	s := toSession(doc)
	assert.Equal(t, "EMP01", s.EmployeeID)
	assert.NotNil(t, s.Login)
	assert.Nil(t, s.Logout)
}

func TestDayKeyNormalizesToDate(t *testing.T) {
	ts := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-06-15", dayKey(ts))
}
