package packageRoutes

import (
	packageControllers "tutorlink/controllers/packages"
	packageValidators "tutorlink/validators/packages"

	"github.com/gofiber/fiber/v2"
)

func SetupPackageRoutes(api fiber.Router) {
	packageGroup := api.Group("/packages")

	packageGroup.Get("/", packageControllers.GetAllPackages)
	packageGroup.Get("/active", packageControllers.GetActivePackages)
	packageGroup.Get("/:id", packageControllers.GetPackage)
	packageGroup.Post("/", packageValidators.Create(), packageControllers.CreatePackage)
	packageGroup.Put("/:id", packageValidators.Update(), packageControllers.UpdatePackage)
	packageGroup.Delete("/:id", packageControllers.DeletePackage)
}
