package benefactors

import (
	"errors"

	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/helpers"
	"pdao/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetBenefactorsAPI(c *fiber.Ctx) error {
	benefactors, err := database.GetBenefactors(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch benefactors"})
	}

	return c.JSON(fiber.Map{
		"benefactors": benefactors,
		"count":       len(benefactors),
	})
}

func GetBenefactorByIDAPI(c *fiber.Ctx) error {
	benefactor, err := database.GetBenefactorByID(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Benefactor not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch benefactor"})
	}
	return c.JSON(fiber.Map{"benefactor": benefactor})
}

type benefactorRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Individual Government Organization"`
}

func CreateBenefactorAPI(c *fiber.Ctx) error {
	var req benefactorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	benefactor := &models.Benefactor{
		Name: req.Name,
		Type: models.BenefactorType(req.Type),
	}

	if err := database.CreateBenefactor(config.GetDB(), benefactor); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create benefactor"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Benefactor created successfully",
		"benefactor": benefactor,
	})
}

func UpdateBenefactorAPI(c *fiber.Ctx) error {
	benefactorID := c.Params("id")
	if benefactorID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Benefactor ID is required"})
	}

	var req benefactorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	benefactor := &models.Benefactor{
		ID:   benefactorID,
		Name: req.Name,
		Type: models.BenefactorType(req.Type),
	}

	err := database.UpdateBenefactor(config.GetDB(), benefactor)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Benefactor not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update benefactor"})
	}

	return c.JSON(fiber.Map{
		"message":    "Benefactor updated successfully",
		"benefactor": benefactor,
	})
}

func DeleteBenefactorAPI(c *fiber.Ctx) error {
	err := database.DeleteBenefactor(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "Benefactor still has benefits on record"})
	}
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Benefactor not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete benefactor"})
	}

	return c.JSON(fiber.Map{"message": "Benefactor deleted successfully"})
}

func DeleteBenefactorsAPI(c *fiber.Ctx) error {
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

	err := database.DeleteBenefactors(config.GetDB(), req.IDs)
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "One of the benefactors still has benefits on record"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete benefactors"})
	}

	return c.JSON(fiber.Map{"message": "Benefactors deleted successfully"})
}

func ImportBenefactorsAPI(c *fiber.Ctx) error {
	type importRequest struct {
		Benefactors []benefactorRequest `json:"benefactors"`
	}

	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Benefactors) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No rows to import"})
	}

	rows := make([]models.Benefactor, 0, len(req.Benefactors))
	for _, r := range req.Benefactors {
		if err := helpers.ValidateStruct(r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		rows = append(rows, models.Benefactor{
			Name: r.Name,
			Type: models.BenefactorType(r.Type),
		})
	}

	if err := database.ImportBenefactors(config.GetDB(), rows); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import benefactors"})
	}

	return c.JSON(fiber.Map{"success": true, "imported": len(rows)})
}
