package programs

import (
	"errors"

	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/helpers"
	"pdao/app/models"

	"github.com/gofiber/fiber/v2"
)

func parseProgramFilters(c *fiber.Ctx) database.ProgramFilters {
	return database.ProgramFilters{
		NameSort:             c.Query("nameSort"),
		TypeFilter:           c.Query("typeFilter"),
		FrequencyFilter:      c.Query("frequencyFilter"),
		AssistanceTypeFilter: c.Query("assistanceTypeFilter"),
		Page:                 c.QueryInt("page", 1),
		Limit:                c.QueryInt("limit", 20),
	}
}

func GetProgramsAPI(c *fiber.Ctx) error {
	filters := parseProgramFilters(c)

	programs, total, err := database.GetPrograms(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch programs"})
	}

	return c.JSON(fiber.Map{
		"programs":    programs,
		"count":       len(programs),
		"total_count": total,
		"page":        filters.Page,
	})
}

func GetProgramByIDAPI(c *fiber.Ctx) error {
	program, err := database.GetProgramByID(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Program not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch program"})
	}
	return c.JSON(fiber.Map{"program": program})
}

type programRequest struct {
	Name           string `json:"name" validate:"required"`
	ProgramType    string `json:"program_type" validate:"required,oneof=Assistance Initiative Service Program"`
	Frequency      string `json:"frequency" validate:"required,oneof=Monthly Quarterly Semi-Annual Yearly"`
	AssistanceType string `json:"assistance_type" validate:"required,oneof=Educational Financial Medical"`
}

func CreateProgramAPI(c *fiber.Ctx) error {
	var req programRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	program := &models.Program{
		Name:           req.Name,
		ProgramType:    models.ProgramType(req.ProgramType),
		Frequency:      models.Frequency(req.Frequency),
		AssistanceType: models.AssistanceType(req.AssistanceType),
	}

	if err := database.CreateProgram(config.GetDB(), program); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create program"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Program created successfully",
		"program": program,
	})
}

func UpdateProgramAPI(c *fiber.Ctx) error {
	programID := c.Params("id")
	if programID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Program ID is required"})
	}

	var req programRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	program := &models.Program{
		ID:             programID,
		Name:           req.Name,
		ProgramType:    models.ProgramType(req.ProgramType),
		Frequency:      models.Frequency(req.Frequency),
		AssistanceType: models.AssistanceType(req.AssistanceType),
	}

	err := database.UpdateProgram(config.GetDB(), program)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Program not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update program"})
	}

	return c.JSON(fiber.Map{
		"message": "Program updated successfully",
		"program": program,
	})
}

func DeleteProgramAPI(c *fiber.Ctx) error {
	err := database.DeleteProgram(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "Program still has enrolled beneficiaries"})
	}
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Program not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete program"})
	}

	return c.JSON(fiber.Map{"message": "Program deleted successfully"})
}

func DeleteProgramsAPI(c *fiber.Ctx) error {
	type deleteRequest struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}

	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No IDs provided"})
	}

	err := database.DeletePrograms(config.GetDB(), req.IDs)
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "One of the programs still has enrolled beneficiaries"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete programs"})
	}

	return c.JSON(fiber.Map{"message": "Programs deleted successfully"})
}

func ImportProgramsAPI(c *fiber.Ctx) error {
	type importRequest struct {
		Programs []programRequest `json:"programs"`
	}

	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Programs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No rows to import"})
	}

	rows := make([]models.Program, 0, len(req.Programs))
	for _, r := range req.Programs {
		if err := helpers.ValidateStruct(r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		rows = append(rows, models.Program{
			Name:           r.Name,
			ProgramType:    models.ProgramType(r.ProgramType),
			Frequency:      models.Frequency(r.Frequency),
			AssistanceType: models.AssistanceType(r.AssistanceType),
		})
	}

	if err := database.ImportPrograms(config.GetDB(), rows); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import programs"})
	}

	return c.JSON(fiber.Map{"success": true, "imported": len(rows)})
}
