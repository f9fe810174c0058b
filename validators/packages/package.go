package packageValidator

import (
	"tutorlink/middleware"
	"tutorlink/validators"

	"github.com/gofiber/fiber/v2"
)

type CreatePackageRequest struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	LessonsCount int     `json:"lessonsCount" validate:"required,gte=1"`
	Description  string  `json:"description" validate:"required"`
	IsActive     *bool   `json:"isActive"`
}

type UpdatePackageRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	LessonsCount *int     `json:"lessonsCount" validate:"omitempty,gte=1"`
	Description  *string  `json:"description"`
	IsActive     *bool    `json:"isActive"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePackageRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedPackage", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdatePackageRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedPackageUpdate", reqData)
		return c.Next()
	}
}
