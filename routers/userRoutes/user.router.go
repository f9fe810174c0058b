package userRoutes

import (
	userControllers "tutorlink/controllers/user"
	"tutorlink/middleware"
	"tutorlink/models"
	userValidators "tutorlink/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(api fiber.Router) {
	userGroup := api.Group("/users")

	userGroup.Get("/", userControllers.GetAllUsers)
	userGroup.Get("/:id", userControllers.GetUser)
	userGroup.Post("/", userValidators.Create(), userControllers.CreateUser)
	userGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userValidators.Update(), userControllers.UpdateUser)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userControllers.DeleteUser)
}
