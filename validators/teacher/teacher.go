package teacherValidator

import (
	"time"

	"tutorlink/middleware"
	"tutorlink/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateTeacherRequest struct {
	UserID         uint        `json:"userId" validate:"required"`
	Bio            string      `json:"bio" validate:"required"`
	Experience     string      `json:"experience" validate:"required"`
	Languages      []string    `json:"languages" validate:"required,min=1"`
	Price          float64     `json:"price" validate:"gte=0"`
	Rating         float64     `json:"rating" validate:"gte=0,lte=5"`
	TotalStudents  int         `json:"totalStudents" validate:"gte=0"`
	Targets        []string    `json:"targets" validate:"required,min=1"`
	IsActive       *bool       `json:"isActive"`
	AvailableSlots []time.Time `json:"availableSlots"`
}

type UpdateTeacherRequest struct {
	Bio            *string      `json:"bio"`
	Experience     *string      `json:"experience"`
	Languages      *[]string    `json:"languages"`
	Price          *float64     `json:"price" validate:"omitempty,gte=0"`
	Rating         *float64     `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalStudents  *int         `json:"totalStudents" validate:"omitempty,gte=0"`
	Targets        *[]string    `json:"targets"`
	IsActive       *bool        `json:"isActive"`
	AvailableSlots *[]time.Time `json:"availableSlots"`
}

type AddSlotRequest struct {
	Slot time.Time `json:"slot" validate:"required"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTeacherRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedTeacher", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateTeacherRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedTeacherUpdate", reqData)
		return c.Next()
	}
}

// AddSlot validator middleware
func AddSlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddSlotRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Slot.IsZero() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"slot": "Slot is required!",
			})
		}

		c.Locals("validatedSlot", reqData)
		return c.Next()
	}
}
