package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenvStr(t *testing.T) {
	t.Setenv("SAMPLE_KEY", "live")
	assert.Equal(t, "live", GetenvStr("SAMPLE_KEY", "fallback"))
	assert.Equal(t, "fallback", GetenvStr("SAMPLE_KEY_UNSET", "fallback"))
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("SAMPLE_INT", "42")
	assert.Equal(t, 42, GetenvInt("SAMPLE_INT"))
	assert.Equal(t, 0, GetenvInt("SAMPLE_INT_UNSET"))
}

func TestGetenvBoolDefaultsTrue(t *testing.T) {
	assert.True(t, GetenvBool("SAMPLE_BOOL_UNSET"))
	t.Setenv("SAMPLE_BOOL", "false")
	assert.False(t, GetenvBool("SAMPLE_BOOL"))
}
