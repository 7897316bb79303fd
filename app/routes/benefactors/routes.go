package benefactors

import (
	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBenefactorsRoutes(app *fiber.App) {
	benefactors := app.Group("/benefactors")
	benefactors.Use(auth.AuthMiddleware)

	// Routes
	benefactors.Get("/", BenefactorsPage)

	// API routes
	api := app.Group("/api/benefactors")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetBenefactorsAPI)
	api.Get("/:id", GetBenefactorByIDAPI)
	api.Post("/", CreateBenefactorAPI)
	api.Put("/:id", UpdateBenefactorAPI)
	api.Delete("/:id", DeleteBenefactorAPI) // Delete benefactor (guarded by benefits)
	api.Post("/delete-multiple", DeleteBenefactorsAPI)
	api.Post("/import", ImportBenefactorsAPI)
}

func BenefactorsPage(c *fiber.Ctx) error {
	benefactors, err := database.GetBenefactors(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PDAO",
			"CurrentPage":  "benefactors",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load benefactors. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("benefactor-list", fiber.Map{
		"Title":       "Benefactors - PDAO",
		"CurrentPage": "benefactors",
		"benefactors": benefactors,
		"user":        user,
	})
}
