package people

import (
	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPeopleRoutes(app *fiber.App) {
	people := app.Group("/people")
	people.Use(auth.AuthMiddleware)

	// Routes
	people.Get("/", PeoplePage)

	// API routes
	api := app.Group("/api/people")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetPeopleAPI)          // List with filters/sort/pagination
	api.Get("/:id", GetPersonByIDAPI)   // Get single person
	api.Post("/", CreatePersonAPI)      // Create new person
	api.Put("/:id", UpdatePersonAPI)    // Update existing person
	api.Delete("/:id", DeletePersonAPI) // Delete person (guarded)
	api.Post("/delete-multiple", DeletePeopleAPI)
	api.Post("/import", ImportPeopleAPI)
}

func PeoplePage(c *fiber.Ctx) error {
	filters := parsePersonFilters(c)

	people, total, err := database.GetPeople(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PDAO",
			"CurrentPage":  "people",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load people. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	// Barangays present in the data, for the filter dropdown
	barangays, err := database.GetRegisteredBarangays(config.GetDB())
	if err != nil {
		barangays = models.Barangays
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
	return c.Render("people-list", fiber.Map{
		"Title":       "People - PDAO",
		"CurrentPage": "people",
		"people":      people,
		"barangays":   barangays,
		"currentPage": filters.Page,
		"totalPages":  pages,
		"totalCount":  total,
		"user":        user,
	})
}
