package summary

import (
	"pdao/app/aggregate"
	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/models"
	"pdao/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSummaryRoutes(app *fiber.App) {
	summary := app.Group("/summary")
	summary.Use(auth.AuthMiddleware)
	summary.Get("/", SummaryPage)

	api := app.Group("/api/summary")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSummaryAPI)
}

func newEngine() *aggregate.Engine {
	return aggregate.New(database.NewSummaryStore(config.GetDB()))
}

// SummaryPage renders the office-wide rollup: totals, category tallies, and
// per-program counts.
func SummaryPage(c *fiber.Ctx) error {
	report, err := newEngine().BuildReport()
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PDAO",
			"CurrentPage":  "summary",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to build the summary. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("summary", fiber.Map{
		"Title":                    "Summary - PDAO",
		"CurrentPage":              "summary",
		"totalCounts":              report.TotalCounts,
		"programCountsByType":      report.ProgramCountsByType,
		"programCountByFrequency":  report.ProgramCountByFrequency,
		"programCountByAssistance": report.ProgramCountByAssistance,
		"peopleCountByGender":      report.PeopleCountByGender,
		"peopleCountByDisability":  report.PeopleCountByDisability,
		"benefactorCountByType":    report.BenefactorCountByType,
		"programs":                 report.Programs,
		"people":                   report.People,
		"benefactors":              report.Benefactors,
		"user":                     user,
	})
}

// GetSummaryAPI returns the same report as JSON.
func GetSummaryAPI(c *fiber.Ctx) error {
	report, err := newEngine().BuildReport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build summary"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
