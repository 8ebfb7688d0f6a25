package reports

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App) {
	r := helper.CreateRouteGroup(app, "/reports", "Daily Report APIs")
	r.Get("/grouped", getGroupedReportsHandler)
	r.Get("/:page?/:limit?", getReportsHandler)
	r.Post("/query", queryReportsHandler)
	r.Post("/", createReportHandler)
	r.Delete("/:id", deleteReportHandler)
}
