package chat

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
)

func SetupRoutes(app *fiber.App, state *realtime.Container) {
	h := &handlers{state: state}
	r := helper.CreateRouteGroup(app, "/chat", "Chat APIs")
	r.Get("/live/:peer", h.liveHandler)
	r.Get("/history/:peer/:page?/:limit?", historyHandler)
	r.Post("/", sendMessageHandler)
}
