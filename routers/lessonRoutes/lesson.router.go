package lessonRoutes

import (
	lessonControllers "tutorlink/controllers/lesson"
	lessonValidators "tutorlink/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoutes(api fiber.Router) {
	lessonGroup := api.Group("/lessons")

	lessonGroup.Get("/", lessonControllers.GetAllLessons)
	lessonGroup.Get("/student/:studentId", lessonControllers.GetLessonsByStudent)
	lessonGroup.Get("/teacher/:teacherId", lessonControllers.GetLessonsByTeacher)
	lessonGroup.Get("/:id", lessonControllers.GetLesson)
	lessonGroup.Post("/", lessonValidators.Create(), lessonControllers.CreateLesson)
	lessonGroup.Put("/:id", lessonValidators.Update(), lessonControllers.UpdateLesson)
	lessonGroup.Delete("/:id", lessonControllers.DeleteLesson)
}
