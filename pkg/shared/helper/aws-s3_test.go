package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteAppliedNilMarkerIsSuccess(t *testing.T) {
	// unversioned buckets return no delete marker
	assert.True(t, deleteApplied(nil))
}

func TestDeleteAppliedVersionedMarker(t *testing.T) {
	yes := true
	no := false
	assert.True(t, deleteApplied(&yes))
	assert.False(t, deleteApplied(&no))
}
