package leave

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App) {
	r := helper.CreateRouteGroup(app, "/leave", "Leave & Calendar APIs")
	r.Get("/calendar", calendarHandler)
	r.Get("/holiday", getHolidaysHandler)
	r.Post("/holiday", createHolidayHandler)
	r.Delete("/holiday/:id", deleteHolidayHandler)
	r.Post("/break", createBreakHandler)
	r.Delete("/break/:id", deleteBreakHandler)
	r.Get("/:page?/:limit?", getLeavesHandler)
	r.Post("/", createLeaveHandler)
	r.Put("/:id/review", reviewLeaveHandler)
	r.Delete("/:id", deleteLeaveHandler)
}
