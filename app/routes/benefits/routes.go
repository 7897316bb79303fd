package benefits

import (
	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBenefitsRoutes(app *fiber.App) {
	benefits := app.Group("/benefits")
	benefits.Use(auth.AuthMiddleware)

	// Routes
	benefits.Get("/", BenefitsPage)

	// API routes
	api := app.Group("/api/benefits")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetBenefitsAPI)         // List with filters/sort/pagination
	api.Get("/:id", GetBenefitByIDAPI)   // Get single benefit
	api.Post("/", CreateBenefitAPI)      // Create new benefit
	api.Put("/:id", UpdateBenefitAPI)    // Update existing benefit
	api.Delete("/:id", DeleteBenefitAPI) // Delete benefit (guarded)
	api.Post("/delete-multiple", DeleteBenefitsAPI)
	api.Post("/import", ImportBenefitsAPI)
}

func BenefitsPage(c *fiber.Ctx) error {
	filters := parseBenefitFilters(c)

	benefits, total, err := database.GetBenefits(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PDAO",
			"CurrentPage":  "benefits",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load benefits. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	// Benefactors for the filter dropdown and the create form
	benefactors, err := database.GetBenefactors(config.GetDB())
	if err != nil {
		benefactors = nil
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	user := c.Locals("user").(*models.User)
	return c.Render("benefit-list", fiber.Map{
		"Title":       "Benefits - PDAO",
		"CurrentPage": "benefits",
		"benefits":    benefits,
		"benefactors": benefactors,
		"currentPage": filters.Page,
		"totalPages":  pages,
		"totalCount":  total,
		"user":        user,
	})
}
