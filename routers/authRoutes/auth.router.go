package authRoutes

import (
	authControllers "tutorlink/controllers/auth"
	"tutorlink/middleware"
	"tutorlink/models"
	authValidators "tutorlink/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router) {
	authGroup := api.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Put("/user/:id/role", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), authValidators.UpdateRole(), authControllers.UpdateUserRole)
}
