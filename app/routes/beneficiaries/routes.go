package beneficiaries

import (
	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBeneficiariesRoutes(app *fiber.App) {
	beneficiaries := app.Group("/beneficiaries")
	beneficiaries.Use(auth.AuthMiddleware)

	// Routes
	beneficiaries.Get("/", BeneficiariesPage)

	// API routes
	api := app.Group("/api/beneficiaries")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetBeneficiariesAPI)
	api.Post("/", CreateBeneficiaryAPI)
	api.Delete("/:id", DeleteBeneficiaryAPI)
}

func BeneficiariesPage(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	beneficiaries, total, err := database.GetBeneficiaries(config.GetDB(), page, limit)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PDAO",
			"CurrentPage":  "beneficiaries",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load beneficiaries. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	user := c.Locals("user").(*models.User)
	return c.Render("beneficiary-list", fiber.Map{
		"Title":         "Beneficiaries - PDAO",
		"CurrentPage":   "beneficiaries",
		"beneficiaries": beneficiaries,
		"currentPage":   page,
		"totalPages":    pages,
		"totalCount":    total,
		"user":          user,
	})
}
