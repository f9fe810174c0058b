package purchaseValidator

import (
	"time"

	"tutorlink/middleware"
	"tutorlink/models"
	"tutorlink/validators"

	"github.com/gofiber/fiber/v2"
)

// CreatePurchaseRequest records a package acquisition. RemainingLessons
// defaults to the package's lesson count when omitted; Override permits a
// value above it (administrative top-up).
type CreatePurchaseRequest struct {
	StudentID        uint      `json:"studentId" validate:"required"`
	PackageID        uint      `json:"packageId" validate:"required"`
	RemainingLessons *int      `json:"remainingLessons" validate:"omitempty,gte=0"`
	Status           string    `json:"status"`
	PurchaseDate     time.Time `json:"purchaseDate" validate:"required"`
	Override         bool      `json:"override"`
}

// UpdatePurchaseRequest is the administrative merge; only the balance and
// the status can be corrected.
type UpdatePurchaseRequest struct {
	RemainingLessons *int    `json:"remainingLessons" validate:"omitempty,gte=0"`
	Status           *string `json:"status"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePurchaseRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		if reqData.Status != "" && !models.ValidPurchaseStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of ACTIVE, COMPLETED, EXPIRED, REFUNDED!",
			})
		}

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdatePurchaseRequest)
		if err := middleware.ParseStrict(c.Body(), reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		if reqData.Status != nil && !models.ValidPurchaseStatus(*reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of ACTIVE, COMPLETED, EXPIRED, REFUNDED!",
			})
		}

		c.Locals("validatedPurchaseUpdate", reqData)
		return c.Next()
	}
}
