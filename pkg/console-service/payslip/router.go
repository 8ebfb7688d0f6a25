package payslip

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App) {
	r := helper.CreateRouteGroup(app, "/payslip", "Payslip APIs")
	r.Post("/compute", computeHandler)
	r.Post("/render", renderHandler)
	r.Get("/download/:name", downloadHandler)
	r.Delete("/file/:name", removeHandler)
}
