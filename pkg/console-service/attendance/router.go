package attendance

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
)

func SetupRoutes(app *fiber.App, state *realtime.Container) {
	h := &handlers{state: state}
	r := helper.CreateRouteGroup(app, "/attendance", "Attendance APIs")
	r.Get("/analytics", h.analyticsHandler)
	r.Get("/export", exportHandler)
	r.Get("/:page?/:limit?", getSessionsHandler)
	r.Post("/punch", punchHandler)
}
