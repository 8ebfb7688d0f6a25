package tasks

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App) {
	r := helper.CreateRouteGroup(app, "/tasks", "Task APIs")
	r.Get("/:page?/:limit?", getTasksHandler)
	r.Post("/", createTaskHandler)
	r.Delete("/:id", deleteTaskHandler)
}
