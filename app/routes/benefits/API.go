package benefits

import (
	"errors"
	"time"

	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/helpers"
	"pdao/app/models"

	"github.com/gofiber/fiber/v2"
)

func parseBenefitFilters(c *fiber.Ctx) database.BenefitFilters {
	return database.BenefitFilters{
		NameSort:         c.Query("nameSort"),
		QuantitySort:     c.Query("quantitySort"),
		DateSort:         c.Query("dateSort"),
		BenefactorFilter: c.Query("benefactorFilter"),
		Page:             c.QueryInt("page", 1),
		Limit:            c.QueryInt("limit", 20),
	}
}

func GetBenefitsAPI(c *fiber.Ctx) error {
	filters := parseBenefitFilters(c)

	benefits, total, err := database.GetBenefits(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch benefits"})
	}

	return c.JSON(fiber.Map{
		"benefits":    benefits,
		"count":       len(benefits),
		"total_count": total,
		"page":        filters.Page,
	})
}

func GetBenefitByIDAPI(c *fiber.Ctx) error {
	benefit, err := database.GetBenefitByID(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Benefit not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch benefit"})
	}
	return c.JSON(fiber.Map{"benefit": benefit})
}

type benefitRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	DateReceived string `json:"date_received" validate:"required"`
	BenefactorID string `json:"benefactor_id" validate:"required"`
}

func (r benefitRequest) toBenefit() (*models.Benefit, error) {
	dateReceived, err := time.Parse("2006-01-02", r.DateReceived)
	if err != nil {
		return nil, errors.New("date_received must be YYYY-MM-DD")
	}
	return &models.Benefit{
		Name:         r.Name,
		Description:  r.Description,
		Quantity:     r.Quantity,
		DateReceived: dateReceived,
		BenefactorID: r.BenefactorID,
	}, nil
}

func CreateBenefitAPI(c *fiber.Ctx) error {
	var req benefitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	benefit, err := req.toBenefit()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// The benefactor reference must resolve
	if _, err := database.GetBenefactorByID(config.GetDB(), benefit.BenefactorID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Benefactor not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify benefactor"})
	}

	if err := database.CreateBenefit(config.GetDB(), benefit); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create benefit"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Benefit created successfully",
		"benefit": benefit,
	})
}

func UpdateBenefitAPI(c *fiber.Ctx) error {
	benefitID := c.Params("id")
	if benefitID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Benefit ID is required"})
	}

	var req benefitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	benefit, err := req.toBenefit()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	benefit.ID = benefitID

	err = database.UpdateBenefit(config.GetDB(), benefit)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Benefit not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update benefit"})
	}

	return c.JSON(fiber.Map{
		"message": "Benefit updated successfully",
		"benefit": benefit,
	})
}

func DeleteBenefitAPI(c *fiber.Ctx) error {
	err := database.DeleteBenefit(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "Benefit is still delivered to beneficiaries"})
	}
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Benefit not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete benefit"})
	}

	return c.JSON(fiber.Map{"message": "Benefit deleted successfully"})
}

func DeleteBenefitsAPI(c *fiber.Ctx) error {
	type deleteRequest struct {
		IDs []string `json:"ids"`
	}

	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No IDs provided"})
	}

	err := database.DeleteBenefits(config.GetDB(), req.IDs)
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "One of the benefits is still delivered to beneficiaries"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete benefits"})
	}

	return c.JSON(fiber.Map{"message": "Benefits deleted successfully"})
}

func ImportBenefitsAPI(c *fiber.Ctx) error {
	type benefitImportRow struct {
		Name         string `json:"name" validate:"required"`
		Description  string `json:"description" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		DateReceived string `json:"date_received" validate:"required"`
		Benefactor   string `json:"benefactor" validate:"required"` // by name
	}
	type importRequest struct {
		Benefits []benefitImportRow `json:"benefits"`
	}

	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Benefits) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No rows to import"})
	}

	rows := make([]database.BenefitImportRow, 0, len(req.Benefits))
	for _, r := range req.Benefits {
		if err := helpers.ValidateStruct(r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		dateReceived, err := time.Parse("2006-01-02", r.DateReceived)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "date_received must be YYYY-MM-DD"})
		}
		rows = append(rows, database.BenefitImportRow{
			Benefit: models.Benefit{
				Name:         r.Name,
				Description:  r.Description,
				Quantity:     r.Quantity,
				DateReceived: dateReceived,
			},
			BenefactorName: r.Benefactor,
		})
	}

	if err := database.ImportBenefits(config.GetDB(), rows); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(400).JSON(fiber.Map{"error": "Import references an unknown benefactor"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import benefits"})
	}

	return c.JSON(fiber.Map{"success": true, "imported": len(rows)})
}
