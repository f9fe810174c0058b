package packageController

import (
	"log"

	"tutorlink/database"
	"tutorlink/middleware"
	"tutorlink/models"
	packageValidator "tutorlink/validators/packages"

	"github.com/gofiber/fiber/v2"
)

func GetAllPackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := database.Database.Db.Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Packages fetched successfully!", packages)
}

// GetActivePackages returns only packages currently offered for sale.
// Deactivating a package never touches purchases already made from it.
func GetActivePackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := database.Database.Db.Where("is_active = ?", true).Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active packages fetched successfully!", packages)
}

func GetPackage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package id!", nil)
	}

	var pkg models.Package
	if err := database.Database.Db.First(&pkg, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package fetched successfully!", pkg)
}

func CreatePackage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPackage").(*packageValidator.CreatePackageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	pkg := models.Package{
		Name:         reqData.Name,
		Price:        reqData.Price,
		LessonsCount: reqData.LessonsCount,
		Description:  reqData.Description,
		IsActive:     isActive,
	}

	if err := database.Database.Db.Create(&pkg).Error; err != nil {
		log.Printf("Error creating package: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Package created successfully!", pkg)
}

func UpdatePackage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPackageUpdate").(*packageValidator.UpdatePackageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package id!", nil)
	}

	db := database.Database.Db

	var pkg models.Package
	if err := db.First(&pkg, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	if reqData.Name != nil {
		pkg.Name = *reqData.Name
	}
	if reqData.Price != nil {
		pkg.Price = *reqData.Price
	}
	if reqData.LessonsCount != nil {
		pkg.LessonsCount = *reqData.LessonsCount
	}
	if reqData.Description != nil {
		pkg.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		pkg.IsActive = *reqData.IsActive
	}

	if err := db.Save(&pkg).Error; err != nil {
		log.Printf("Error updating package: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package updated successfully!", pkg)
}

func DeletePackage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package id!", nil)
	}

	res := database.Database.Db.Delete(&models.Package{}, id)
	if res.Error != nil {
		log.Printf("Error deleting package: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete package!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package deleted successfully!", nil)
}
