package chat

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
)

const collectionName = "chatMessages"

type handlers struct {
	state *realtime.Container
}

func sendMessageHandler(c *fiber.Ctx) error {
	req := new(MessageRequest)
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest(err.Error())
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	doc := bson.M{
		"_id":              helper.NewDocId(),
		"conversation_key": ConversationKey(req.SenderId, req.RecipientId),
		"sender_id":        req.SenderId,
		"sender_name":      req.SenderName,
		"recipient_id":     req.RecipientId,
		"text":             req.Text,
		"timestamp":        time.Now(),
	}
	res, err := helper.InsertData(c, collectionName, doc)
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return res
}

// historyHandler - messages between the caller and a peer, oldest first
func historyHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	peer := c.Params("peer")
	if peer == "" {
		return helper.ValidationFailed("peer id required")
	}
	query := bson.M{"conversation_key": ConversationKey(token.UserId, peer)}
	docs, err := helper.GetQueryResult(collectionName, query, helper.Page(c.Params("page")), helper.Limit(c.Params("limit")), bson.M{"timestamp": 1})
	if err != nil {
		return helper.BadRequest(err.Error())
	}
	return helper.SuccessResponse(c, docs)
}

// liveHandler serves the conversation from the last realtime snapshot so a
// polling client sees new messages without a store round trip.
func (h *handlers) liveHandler(c *fiber.Ctx) error {
	token := helper.GetUserTokenValue(c)
	peer := c.Params("peer")
	if peer == "" {
		return helper.ValidationFailed("peer id required")
	}
	snap, ok := h.state.Latest(collectionName)
	if !ok {
		return historyHandler(c)
	}
	key := ConversationKey(token.UserId, peer)
	var docs []bson.M
	for _, d := range snap.Docs {
		if helper.DocString(d, "conversation_key") == key {
			docs = append(docs, d)
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return helper.DocTime(docs[i], "timestamp").Before(helper.DocTime(docs[j], "timestamp"))
	})
	return helper.SuccessResponse(c, docs)
}
