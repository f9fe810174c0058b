package teacherController

import (
	"log"
	"net/url"
	"time"

	"tutorlink/database"
	"tutorlink/middleware"
	"tutorlink/models"
	teacherValidator "tutorlink/validators/teacher"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// TeacherResponse is the full teacher view with the owning user expanded.
type TeacherResponse struct {
	ID             uint               `json:"id"`
	User           models.UserSummary `json:"user"`
	Bio            string             `json:"bio"`
	Experience     string             `json:"experience"`
	Languages      []string           `json:"languages"`
	Price          float64            `json:"price"`
	Rating         float64            `json:"rating"`
	TotalStudents  int                `json:"totalStudents"`
	Targets        []string           `json:"targets"`
	IsActive       bool               `json:"isActive"`
	AvailableSlots []time.Time        `json:"availableSlots"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func toTeacherResponse(t *models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:             t.ID,
		User:           t.User.Summary(),
		Bio:            t.Bio,
		Experience:     t.Experience,
		Languages:      t.Languages,
		Price:          t.Price,
		Rating:         t.Rating,
		TotalStudents:  t.TotalStudents,
		Targets:        t.Targets,
		IsActive:       t.IsActive,
		AvailableSlots: t.AvailableSlots,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func GetAllTeachers(c *fiber.Ctx) error {
	var teachers []models.Teacher
	if err := database.Database.Db.Preload("User").Find(&teachers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teachers!", nil)
	}

	views := make([]TeacherResponse, 0, len(teachers))
	for i := range teachers {
		views = append(views, toTeacherResponse(&teachers[i]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teachers fetched successfully!", views)
}

func GetTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id!", nil)
	}

	var teacher models.Teacher
	if err := database.Database.Db.Preload("User").First(&teacher, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher fetched successfully!", toTeacherResponse(&teacher))
}

func GetTeacherByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var teacher models.Teacher
	if err := database.Database.Db.Preload("User").Where("user_id = ?", userID).First(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher fetched successfully!", toTeacherResponse(&teacher))
}

func CreateTeacher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTeacher").(*teacherValidator.CreateTeacherRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, reqData.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	teacher := models.Teacher{
		UserID:         reqData.UserID,
		Bio:            reqData.Bio,
		Experience:     reqData.Experience,
		Languages:      datatypes.NewJSONSlice(reqData.Languages),
		Price:          reqData.Price,
		Rating:         reqData.Rating,
		TotalStudents:  reqData.TotalStudents,
		Targets:        datatypes.NewJSONSlice(reqData.Targets),
		IsActive:       isActive,
		AvailableSlots: datatypes.NewJSONSlice(reqData.AvailableSlots),
	}

	if err := db.Create(&teacher).Error; err != nil {
		log.Printf("Error creating teacher: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create teacher!", nil)
	}

	teacher.User = user
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Teacher created successfully!", toTeacherResponse(&teacher))
}

func UpdateTeacher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTeacherUpdate").(*teacherValidator.UpdateTeacherRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id!", nil)
	}

	db := database.Database.Db

	var teacher models.Teacher
	if err := db.Preload("User").First(&teacher, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	if reqData.Bio != nil {
		teacher.Bio = *reqData.Bio
	}
	if reqData.Experience != nil {
		teacher.Experience = *reqData.Experience
	}
	if reqData.Languages != nil {
		teacher.Languages = datatypes.NewJSONSlice(*reqData.Languages)
	}
	if reqData.Price != nil {
		teacher.Price = *reqData.Price
	}
	if reqData.Rating != nil {
		teacher.Rating = *reqData.Rating
	}
	if reqData.TotalStudents != nil {
		teacher.TotalStudents = *reqData.TotalStudents
	}
	if reqData.Targets != nil {
		teacher.Targets = datatypes.NewJSONSlice(*reqData.Targets)
	}
	if reqData.IsActive != nil {
		teacher.IsActive = *reqData.IsActive
	}
	if reqData.AvailableSlots != nil {
		teacher.AvailableSlots = datatypes.NewJSONSlice(*reqData.AvailableSlots)
	}

	if err := db.Save(&teacher).Error; err != nil {
		log.Printf("Error updating teacher: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update teacher!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher updated successfully!", toTeacherResponse(&teacher))
}

// AddSlot appends an availability instant. Duplicate slots are allowed; the
// source of truth for bookings is the lessons table, not this list.
func AddSlot(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSlot").(*teacherValidator.AddSlotRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id!", nil)
	}

	db := database.Database.Db

	var teacher models.Teacher
	if err := db.Preload("User").First(&teacher, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	teacher.AvailableSlots = append(teacher.AvailableSlots, reqData.Slot)
	if err := db.Save(&teacher).Error; err != nil {
		log.Printf("Error adding slot: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add slot!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Slot added successfully!", toTeacherResponse(&teacher))
}

// RemoveSlot drops every availability entry matching the instant given in
// the path (RFC 3339).
func RemoveSlot(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id!", nil)
	}

	slotStr, err := url.PathUnescape(c.Params("slot"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid slot timestamp!", nil)
	}
	slot, err := time.Parse(time.RFC3339, slotStr)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid slot timestamp!", nil)
	}

	db := database.Database.Db

	var teacher models.Teacher
	if err := db.Preload("User").First(&teacher, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	teacher.RemoveSlot(slot)
	if err := db.Save(&teacher).Error; err != nil {
		log.Printf("Error removing slot: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove slot!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Slot removed successfully!", toTeacherResponse(&teacher))
}

func DeleteTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id!", nil)
	}

	res := database.Database.Db.Delete(&models.Teacher{}, id)
	if res.Error != nil {
		log.Printf("Error deleting teacher: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete teacher!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher deleted successfully!", nil)
}
