package purchaseRoutes

import (
	purchaseControllers "tutorlink/controllers/purchase"
	purchaseValidators "tutorlink/validators/purchase"

	"github.com/gofiber/fiber/v2"
)

func SetupPurchaseRoutes(api fiber.Router) {
	purchaseGroup := api.Group("/purchases")

	purchaseGroup.Get("/", purchaseControllers.GetAllPurchases)
	purchaseGroup.Get("/student/:studentId/active", purchaseControllers.GetActivePurchasesByStudent)
	purchaseGroup.Get("/student/:studentId", purchaseControllers.GetPurchasesByStudent)
	purchaseGroup.Get("/:id", purchaseControllers.GetPurchase)
	purchaseGroup.Post("/", purchaseValidators.Create(), purchaseControllers.CreatePurchase)
	purchaseGroup.Put("/:id/use-lesson", purchaseControllers.UseLesson)
	purchaseGroup.Put("/:id", purchaseValidators.Update(), purchaseControllers.UpdatePurchase)
	purchaseGroup.Delete("/:id", purchaseControllers.DeletePurchase)
}
