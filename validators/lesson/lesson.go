package lessonValidator

import (
	"time"

	"tutorlink/middleware"
	"tutorlink/models"
	"tutorlink/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateLessonRequest books a session. PurchaseID is optional; when present
// the booking consumes one lesson credit from that purchase.
type CreateLessonRequest struct {
	StudentID  uint      `json:"studentId" validate:"required"`
	TeacherID  uint      `json:"teacherId" validate:"required"`
	Slot       time.Time `json:"slot" validate:"required"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	PurchaseID *uint     `json:"purchaseId"`
}

type UpdateLessonRequest struct {
	Slot   *time.Time `json:"slot"`
	Status *string    `json:"status"`
	Notes  *string    `json:"notes"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		if reqData.Status != "" && !models.ValidLessonStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of PENDING, CONFIRMED, COMPLETED, CANCELLED!",
			})
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status != nil && !models.ValidLessonStatus(*reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of PENDING, CONFIRMED, COMPLETED, CANCELLED!",
			})
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
