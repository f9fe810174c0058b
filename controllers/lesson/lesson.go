package lessonController

import (
	"errors"
	"log"
	"time"

	"tutorlink/database"
	"tutorlink/middleware"
	"tutorlink/models"
	lessonValidator "tutorlink/validators/lesson"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LessonResponse is the lesson view with student and teacher expanded.
type LessonResponse struct {
	ID         uint                  `json:"id"`
	Student    models.UserSummary    `json:"student"`
	Teacher    models.TeacherSummary `json:"teacher"`
	Slot       time.Time             `json:"slot"`
	Status     string                `json:"status"`
	Notes      string                `json:"notes"`
	PurchaseID *uint                 `json:"purchaseId"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func toLessonResponse(l *models.Lesson) LessonResponse {
	return LessonResponse{
		ID:         l.ID,
		Student:    l.Student.Summary(),
		Teacher:    l.Teacher.Summary(),
		Slot:       l.Slot,
		Status:     l.Status,
		Notes:      l.Notes,
		PurchaseID: l.PurchaseID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func lessonList(c *fiber.Ctx, query *gorm.DB) error {
	var lessons []models.Lesson
	if err := query.Preload("Student").Preload("Teacher").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	views := make([]LessonResponse, 0, len(lessons))
	for i := range lessons {
		views = append(views, toLessonResponse(&lessons[i]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", views)
}

func GetAllLessons(c *fiber.Ctx) error {
	return lessonList(c, database.Database.Db)
}

func GetLessonsByStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}
	return lessonList(c, database.Database.Db.Where("student_id = ?", studentID))
}

func GetLessonsByTeacher(c *fiber.Ctx) error {
	teacherID, err := c.ParamsInt("teacherId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id!", nil)
	}
	return lessonList(c, database.Database.Db.Where("teacher_id = ?", teacherID))
}

func GetLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.Preload("Student").Preload("Teacher").First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", toLessonResponse(&lesson))
}

// CreateLesson books a session. When the request names a purchase, the
// lesson insert and the credit decrement commit or roll back together.
func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*lessonValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.User
	if err := db.First(&student, reqData.StudentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var teacher models.Teacher
	if err := db.First(&teacher, reqData.TeacherID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	status := reqData.Status
	if status == "" {
		status = models.LessonPending
	}

	lesson := models.Lesson{
		StudentID:  reqData.StudentID,
		TeacherID:  reqData.TeacherID,
		Slot:       reqData.Slot,
		Status:     status,
		Notes:      reqData.Notes,
		PurchaseID: reqData.PurchaseID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if reqData.PurchaseID != nil {
			if _, err := models.ConsumeLessonCredit(tx, *reqData.PurchaseID); err != nil {
				return err
			}
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPurchaseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
		case errors.Is(err, models.ErrPurchaseNotActive):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Purchase is not active!", nil)
		case errors.Is(err, models.ErrInsufficientCredits):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "No remaining lessons in this package!", nil)
		}
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	lesson.Student = student
	lesson.Teacher = teacher
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", toLessonResponse(&lesson))
}

func UpdateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLessonUpdate").(*lessonValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Preload("Student").Preload("Teacher").First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Slot != nil {
		lesson.Slot = *reqData.Slot
	}
	if reqData.Status != nil {
		lesson.Status = *reqData.Status
	}
	if reqData.Notes != nil {
		lesson.Notes = *reqData.Notes
	}

	if err := db.Save(&lesson).Error; err != nil {
		log.Printf("Error updating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", toLessonResponse(&lesson))
}

func DeleteLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	res := database.Database.Db.Delete(&models.Lesson{}, id)
	if res.Error != nil {
		log.Printf("Error deleting lesson: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
