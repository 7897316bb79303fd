package programs

import (
	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupProgramsRoutes(app *fiber.App) {
	programs := app.Group("/programs")
	programs.Use(auth.AuthMiddleware)

	// Routes
	programs.Get("/", ProgramsPage)

	// API routes
	api := app.Group("/api/programs")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetProgramsAPI)          // List with filters/sort/pagination
	api.Get("/:id", GetProgramByIDAPI)    // Get single program
	api.Post("/", CreateProgramAPI)       // Create new program
	api.Put("/:id", UpdateProgramAPI)     // Update existing program
	api.Delete("/:id", DeleteProgramAPI)  // Delete program (guarded)
	api.Post("/delete-multiple", DeleteProgramsAPI)
	api.Post("/import", ImportProgramsAPI)
}

func ProgramsPage(c *fiber.Ctx) error {
	filters := parseProgramFilters(c)

	programs, total, err := database.GetPrograms(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PDAO",
			"CurrentPage":  "programs",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load programs. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	limit, _ := pagination(filters)
	return c.Render("program-list", fiber.Map{
		"Title":       "Programs - PDAO",
		"CurrentPage": "programs",
		"programs":    programs,
		"currentPage": filters.Page,
		"totalPages":  totalPages(total, limit),
		"totalCount":  total,
		"user":        user,
	})
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		limit = 20
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

func pagination(f database.ProgramFilters) (int, int) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	return limit, page
}
