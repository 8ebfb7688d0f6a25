package team

import (
	"github.com/gofiber/fiber/v2"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func SetupRoutes(app *fiber.App) {
	r := helper.CreateRouteGroup(app, "/team", "Team Directory APIs")
	r.Get("/member/:id", getMemberHandler)
	r.Get("/:page?/:limit?", getMembersHandler)
	r.Post("/search", searchMembersHandler)
	r.Post("/", createMemberHandler)
	r.Put("/:id", updateMemberHandler)
	r.Delete("/:id", deleteMemberHandler)
}
