package chat

import "strings"

type MessageRequest struct {
	SenderId    string `json:"sender_id" validate:"required"`
	SenderName  string `json:"sender_name" validate:"required"`
	RecipientId string `json:"recipient_id" validate:"required"`
	Text        string `json:"text" validate:"required"`
}

// ConversationKey joins two user ids in lexicographic order so both sides
// of a chat resolve to the same key.
func ConversationKey(uid1, uid2 string) string {
	if strings.Compare(uid1, uid2) > 0 {
		uid1, uid2 = uid2, uid1
	}
	return uid1 + "_" + uid2
}
