package teacherRoutes

import (
	teacherControllers "tutorlink/controllers/teacher"
	teacherValidators "tutorlink/validators/teacher"

	"github.com/gofiber/fiber/v2"
)

func SetupTeacherRoutes(api fiber.Router) {
	teacherGroup := api.Group("/teachers")

	teacherGroup.Get("/", teacherControllers.GetAllTeachers)
	teacherGroup.Get("/user/:userId", teacherControllers.GetTeacherByUser)
	teacherGroup.Get("/:id", teacherControllers.GetTeacher)
	teacherGroup.Post("/", teacherValidators.Create(), teacherControllers.CreateTeacher)
	teacherGroup.Put("/:id", teacherValidators.Update(), teacherControllers.UpdateTeacher)
	teacherGroup.Post("/:id/slots", teacherValidators.AddSlot(), teacherControllers.AddSlot)
	teacherGroup.Delete("/:id/slots/:slot", teacherControllers.RemoveSlot)
	teacherGroup.Delete("/:id", teacherControllers.DeleteTeacher)
}
