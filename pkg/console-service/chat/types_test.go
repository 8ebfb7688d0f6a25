package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, ConversationKey("alice", "bob"), ConversationKey("bob", "alice"))
	assert.Equal(t, "alice_bob", ConversationKey("bob", "alice"))
}

func TestConversationKeyLexicographic(t *testing.T) {
	assert.Equal(t, "U1_U2", ConversationKey("U2", "U1"))
	assert.Equal(t, "a_b", ConversationKey("a", "b"))
}
