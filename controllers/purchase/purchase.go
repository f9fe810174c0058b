package purchaseController

import (
	"errors"
	"log"
	"time"

	"tutorlink/database"
	"tutorlink/middleware"
	"tutorlink/models"
	purchaseValidator "tutorlink/validators/purchase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseResponse is the purchase view with student and package expanded.
type PurchaseResponse struct {
	ID               uint                  `json:"id"`
	Student          models.UserSummary    `json:"student"`
	Package          models.PackageSummary `json:"package"`
	RemainingLessons int                   `json:"remainingLessons"`
	Status           string                `json:"status"`
	Reference        string                `json:"reference"`
	PurchaseDate     time.Time             `json:"purchaseDate"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

func toPurchaseResponse(p *models.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:               p.ID,
		Student:          p.Student.Summary(),
		Package:          p.Package.Summary(),
		RemainingLessons: p.RemainingLessons,
		Status:           p.Status,
		Reference:        p.Reference,
		PurchaseDate:     p.PurchaseDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func purchaseList(c *fiber.Ctx, query *gorm.DB) error {
	var purchases []models.Purchase
	if err := query.Preload("Student").Preload("Package").Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	views := make([]PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		views = append(views, toPurchaseResponse(&purchases[i]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", views)
}

func GetAllPurchases(c *fiber.Ctx) error {
	return purchaseList(c, database.Database.Db)
}

func GetPurchasesByStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}
	return purchaseList(c, database.Database.Db.Where("student_id = ?", studentID))
}

// GetActivePurchasesByStudent returns the purchases the student can still
// book lessons from: ACTIVE status with credits remaining.
func GetActivePurchasesByStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}
	return purchaseList(c, database.Database.Db.
		Where("student_id = ? AND status = ? AND remaining_lessons > 0", studentID, models.PurchaseActive))
}

func GetPurchase(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	var purchase models.Purchase
	if err := database.Database.Db.Preload("Student").Preload("Package").First(&purchase, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase fetched successfully!", toPurchaseResponse(&purchase))
}

func CreatePurchase(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPurchase").(*purchaseValidator.CreatePurchaseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.User
	if err := db.First(&student, reqData.StudentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var pkg models.Package
	if err := db.First(&pkg, reqData.PackageID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	remaining := pkg.LessonsCount
	if reqData.RemainingLessons != nil {
		remaining = *reqData.RemainingLessons
	}

	// Granting more credits than the package holds requires an explicit
	// override.
	if remaining > pkg.LessonsCount && !reqData.Override {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"remainingLessons": "RemainingLessons exceeds the package lesson count!",
		})
	}

	status := reqData.Status
	if status == "" {
		status = models.PurchaseActive
	}

	purchase := models.Purchase{
		StudentID:        reqData.StudentID,
		PackageID:        reqData.PackageID,
		RemainingLessons: remaining,
		Status:           status,
		Reference:        uuid.NewString(),
		PurchaseDate:     reqData.PurchaseDate,
	}

	if err := db.Create(&purchase).Error; err != nil {
		log.Printf("Error creating purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase!", nil)
	}

	purchase.Student = student
	purchase.Package = pkg
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Purchase created successfully!", toPurchaseResponse(&purchase))
}

// UpdatePurchase is the administrative correction path. Routine balance
// changes must go through UseLesson instead.
func UpdatePurchase(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPurchaseUpdate").(*purchaseValidator.UpdatePurchaseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	db := database.Database.Db

	var purchase models.Purchase
	if err := db.Preload("Student").Preload("Package").First(&purchase, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	if reqData.RemainingLessons != nil {
		purchase.RemainingLessons = *reqData.RemainingLessons
	}
	if reqData.Status != nil {
		purchase.Status = *reqData.Status
	}

	if err := db.Save(&purchase).Error; err != nil {
		log.Printf("Error updating purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update purchase!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase updated successfully!", toPurchaseResponse(&purchase))
}

// UseLesson consumes one lesson credit. Exhaustion is a 409, not a server
// error; the client decides whether to buy another package.
func UseLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	purchase, err := models.ConsumeLessonCredit(database.Database.Db, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPurchaseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
		case errors.Is(err, models.ErrPurchaseNotActive):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Purchase is not active!", nil)
		case errors.Is(err, models.ErrInsufficientCredits):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "No remaining lessons in this package!", nil)
		}
		log.Printf("Error consuming lesson credit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to use lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson used successfully!", toPurchaseResponse(purchase))
}

func DeletePurchase(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	res := database.Database.Db.Delete(&models.Purchase{}, id)
	if res.Error != nil {
		log.Printf("Error deleting purchase: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete purchase!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase deleted successfully!", nil)
}
