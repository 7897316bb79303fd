package people

import (
	"errors"
	"time"

	"pdao/app/config"
	"pdao/app/database"
	"pdao/app/helpers"
	"pdao/app/models"

	"github.com/gofiber/fiber/v2"
)

func parsePersonFilters(c *fiber.Ctx) database.PersonFilters {
	return database.PersonFilters{
		FirstNameSort:        c.Query("firstNameSort"),
		LastNameSort:         c.Query("lastNameSort"),
		BirthdateSort:        c.Query("birthdateSort"),
		GenderFilter:         c.Query("genderFilter"),
		BarangayFilter:       c.Query("barangayFilter"),
		DisabilityTypeFilter: c.Query("disabilityTypeFilter"),
		Page:                 c.QueryInt("page", 1),
		Limit:                c.QueryInt("limit", 20),
	}
}

// personTableData is a person row with the derived fields resolved, as the
// list page displays them.
type personTableData struct {
	models.Person
	Name         string `json:"name"`
	Age          int    `json:"age"`
	PWDIDExpired bool   `json:"pwd_id_expired"`
	CodeMatched  bool   `json:"code_matched"`
}

func toTableData(people []models.Person) []personTableData {
	now := time.Now()
	rows := make([]personTableData, 0, len(people))
	for i := range people {
		p := people[i]
		rows = append(rows, personTableData{
			Person:       p,
			Name:         p.Name(),
			Age:          p.Age(now),
			PWDIDExpired: p.PWDIDExpired(now),
			CodeMatched:  p.CodeMatched(),
		})
	}
	return rows
}

func GetPeopleAPI(c *fiber.Ctx) error {
	filters := parsePersonFilters(c)

	people, total, err := database.GetPeople(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch people"})
	}

	return c.JSON(fiber.Map{
		"people":      toTableData(people),
		"count":       len(people),
		"total_count": total,
		"page":        filters.Page,
	})
}

func GetPersonByIDAPI(c *fiber.Ctx) error {
	person, err := database.GetPersonByID(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Person not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch person"})
	}

	rows := toTableData([]models.Person{*person})
	return c.JSON(fiber.Map{"person": rows[0]})
}

type personRequest struct {
	FirstName             string `json:"first_name" validate:"required"`
	LastName              string `json:"last_name" validate:"required"`
	Gender                string `json:"gender" validate:"required,oneof=Male Female Other"`
	Birthdate             string `json:"birthdate" validate:"required"`
	Address               string `json:"address" validate:"required"`
	Barangay              string `json:"barangay" validate:"required"`
	ContactNumber         string `json:"contact_number" validate:"required"`
	DisabilityType        string `json:"disability_type" validate:"required,oneof=Physical Sensory Intellectual Mental"`
	Disability            string `json:"disability" validate:"required"`
	PWDCardIDNo           string `json:"pwd_card_id_no" validate:"required"`
	RecentPWDIDUpdateDate string `json:"recent_pwd_id_update_date" validate:"required"`
}

func (r personRequest) toPerson() (*models.Person, error) {
	birthdate, err := time.Parse("2006-01-02", r.Birthdate)
	if err != nil {
		return nil, errors.New("birthdate must be YYYY-MM-DD")
	}
	updateDate, err := time.Parse("2006-01-02", r.RecentPWDIDUpdateDate)
	if err != nil {
		return nil, errors.New("recent_pwd_id_update_date must be YYYY-MM-DD")
	}
	if !models.ValidBarangay(r.Barangay) {
		return nil, errors.New("barangay is not a recognized locality")
	}

	return &models.Person{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Gender:                models.Gender(r.Gender),
		Birthdate:             birthdate,
		Address:               r.Address,
		Barangay:              r.Barangay,
		ContactNumber:         r.ContactNumber,
		DisabilityType:        models.DisabilityType(r.DisabilityType),
		Disability:            r.Disability,
		PWDCardIDNo:           r.PWDCardIDNo,
		RecentPWDIDUpdateDate: updateDate,
	}, nil
}

func CreatePersonAPI(c *fiber.Ctx) error {
	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	person, err := req.toPerson()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreatePerson(config.GetDB(), person); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create person"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Person created successfully",
		"person":  person,
	})
}

func UpdatePersonAPI(c *fiber.Ctx) error {
	personID := c.Params("id")
	if personID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Person ID is required"})
	}

	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	person, err := req.toPerson()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	person.ID = personID

	err = database.UpdatePerson(config.GetDB(), person)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Person not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update person"})
	}

	return c.JSON(fiber.Map{
		"message": "Person updated successfully",
		"person":  person,
	})
}

func DeletePersonAPI(c *fiber.Ctx) error {
	err := database.DeletePerson(config.GetDB(), c.Params("id"))
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "Person is still registered as a beneficiary"})
	}
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Person not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete person"})
	}

	return c.JSON(fiber.Map{"message": "Person deleted successfully"})
}

func DeletePeopleAPI(c *fiber.Ctx) error {
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

	err := database.DeletePeople(config.GetDB(), req.IDs)
	if errors.Is(err, database.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "One of the people is still registered as a beneficiary"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete people"})
	}

	return c.JSON(fiber.Map{"message": "People deleted successfully"})
}

func ImportPeopleAPI(c *fiber.Ctx) error {
	type importRequest struct {
		People []personRequest `json:"people"`
	}

	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.People) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No rows to import"})
	}

	rows := make([]models.Person, 0, len(req.People))
	for _, r := range req.People {
		if err := helpers.ValidateStruct(r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		person, err := r.toPerson()
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		rows = append(rows, *person)
	}

	if err := database.ImportPeople(config.GetDB(), rows); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import people"})
	}

	return c.JSON(fiber.Map{"success": true, "imported": len(rows)})
}
