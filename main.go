package main

import (
	"log"

	"tutorlink/config"
	"tutorlink/database"
	authRoutes "tutorlink/routers/authRoutes"
	lessonRoutes "tutorlink/routers/lessonRoutes"
	packageRoutes "tutorlink/routers/packageRoutes"
	purchaseRoutes "tutorlink/routers/purchaseRoutes"
	teacherRoutes "tutorlink/routers/teacherRoutes"
	userRoutes "tutorlink/routers/userRoutes"
	"tutorlink/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	api := app.Group("/api")

	authRoutes.SetupAuthRoutes(api)
	userRoutes.SetupUserRoutes(api)
	teacherRoutes.SetupTeacherRoutes(api)
	lessonRoutes.SetupLessonRoutes(api)
	packageRoutes.SetupPackageRoutes(api)
	purchaseRoutes.SetupPurchaseRoutes(api)

	utils.InitializePurchaseScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
