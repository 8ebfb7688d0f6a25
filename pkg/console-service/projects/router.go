package projects

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
	"innomatrics.com/go-api/pkg/shared/realtime"
)

func SetupRoutes(app *fiber.App, state *realtime.Container) {
	h := &handlers{state: state}
	r := helper.CreateRouteGroup(app, "/projects", "Project APIs")
	r.Get("/dashboard", h.dashboardHandler)
	r.Get("/:id", h.getProjectHandler)
	r.Post("/", h.createProjectHandler)
	r.Put("/:id", h.updateProjectHandler)
	r.Delete("/:id", h.deleteProjectHandler)
}
