package beneficiaries

import (
	"errors"

	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/helpers"
	"pdao/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetBeneficiariesAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	beneficiaries, total, err := database.GetBeneficiaries(config.GetDB(), page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch beneficiaries"})
	}

	return c.JSON(fiber.Map{
		"beneficiaries": beneficiaries,
		"count":         len(beneficiaries),
		"total_count":   total,
		"page":          page,
	})
}

func CreateBeneficiaryAPI(c *fiber.Ctx) error {
	type beneficiaryRequest struct {
		ProgramEnrolled  string `json:"program_enrolled" validate:"required"`
		PersonRegistered string `json:"person_registered" validate:"required"`
		BenefitDelivered string `json:"benefit_delivered" validate:"required"`
	}

	var req beneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	beneficiary := &models.Beneficiary{
		ProgramEnrolled:  req.ProgramEnrolled,
		PersonRegistered: req.PersonRegistered,
		BenefitDelivered: req.BenefitDelivered,
	}

	err := database.CreateBeneficiary(config.GetDB(), beneficiary)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "A referenced record does not exist"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create beneficiary"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Beneficiary created successfully",
		"beneficiary": beneficiary,
	})
}

func DeleteBeneficiaryAPI(c *fiber.Ctx) error {
	err := database.DeleteBeneficiary(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Beneficiary not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete beneficiary"})
	}

	return c.JSON(fiber.Map{"message": "Beneficiary deleted successfully"})
}
