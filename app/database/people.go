package database

import (
	"database/sql"
	"strings"

	"pdao/app/models"
)

// PersonFilters represents filtering, sorting, and pagination options for
// the people list.
type PersonFilters struct {
	FirstNameSort        string // "az" or "za"
	LastNameSort         string // "az" or "za"
	BirthdateSort        string // "oldest" or "newest"
	GenderFilter         string
	BarangayFilter       string // comma-separated barangay names
	DisabilityTypeFilter string // comma-separated DisabilityType values
	Page                 int
	Limit                int
}

// buildPersonListQuery assembles the WHERE/ORDER BY portion shared by the
// list and count queries. Sort keys compose in the order the page offers
// them: first name, last name, birthdate.
func buildPersonListQuery(f PersonFilters) (where string, orderBy string, args []interface{}) {
	var clauses []string

	if f.GenderFilter != "" {
		args = append(args, f.GenderFilter)
		clauses = append(clauses, "gender = $"+itoa(len(args)))
	}
	if values := splitCSV(f.BarangayFilter); len(values) > 0 {
		var clause string
		clause, args = inClause("barangay", values, args)
		clauses = append(clauses, clause)
	}
	if values := splitCSV(f.DisabilityTypeFilter); len(values) > 0 {
		var clause string
		clause, args = inClause("disability_type", values, args)
		clauses = append(clauses, clause)
	}

	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var keys []string
	if f.FirstNameSort != "" {
		keys = append(keys, "first_name "+sortDirection(f.FirstNameSort))
	}
	if f.LastNameSort != "" {
		keys = append(keys, "last_name "+sortDirection(f.LastNameSort))
	}
	if f.BirthdateSort != "" {
		keys = append(keys, "birthdate "+sortDirection(f.BirthdateSort))
	}
	if len(keys) == 0 {
		keys = append(keys, "last_name ASC", "first_name ASC")
	}
	orderBy = "ORDER BY " + strings.Join(keys, ", ")

	return where, orderBy, args
}

const personColumns = `id, first_name, last_name, gender, birthdate, address, barangay,
			  contact_number, disability_type, disability, pwd_card_id_no, recent_pwd_id_update_date`

func scanPerson(rows *sql.Rows, p *models.Person) error {
	return rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Gender, &p.Birthdate,
		&p.Address, &p.Barangay, &p.ContactNumber, &p.DisabilityType,
		&p.Disability, &p.PWDCardIDNo, &p.RecentPWDIDUpdateDate)
}

// GetPeople returns one page of people plus the total count matching the
// filters.
func GetPeople(db *sql.DB, f PersonFilters) ([]models.Person, int, error) {
	where, orderBy, args := buildPersonListQuery(f)

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM people "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageWindow(f.Page, f.Limit)
	args = append(args, limit, offset)
	query := "SELECT " + personColumns + " FROM people " + where + " " + orderBy +
		" LIMIT $" + itoa(len(args)-1) + " OFFSET $" + itoa(len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := scanPerson(rows, &p); err != nil {
			return nil, 0, err
		}
		people = append(people, p)
	}
	return people, total, rows.Err()
}

func GetPersonByID(db *sql.DB, id string) (*models.Person, error) {
	p := &models.Person{}
	query := "SELECT " + personColumns + " FROM people WHERE id = $1"
	err := db.QueryRow(query, id).Scan(&p.ID, &p.FirstName, &p.LastName,
		&p.Gender, &p.Birthdate, &p.Address, &p.Barangay, &p.ContactNumber,
		&p.DisabilityType, &p.Disability, &p.PWDCardIDNo, &p.RecentPWDIDUpdateDate)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePerson(db *sql.DB, p *models.Person) error {
	query := `INSERT INTO people (first_name, last_name, gender, birthdate, address, barangay,
			  contact_number, disability_type, disability, pwd_card_id_no, recent_pwd_id_update_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`
	return db.QueryRow(query, p.FirstName, p.LastName, p.Gender, p.Birthdate,
		p.Address, p.Barangay, p.ContactNumber, p.DisabilityType, p.Disability,
		p.PWDCardIDNo, p.RecentPWDIDUpdateDate).Scan(&p.ID)
}

func UpdatePerson(db *sql.DB, p *models.Person) error {
	query := `UPDATE people
			  SET first_name = $1, last_name = $2, gender = $3, birthdate = $4, address = $5,
				  barangay = $6, contact_number = $7, disability_type = $8, disability = $9,
				  pwd_card_id_no = $10, recent_pwd_id_update_date = $11
			  WHERE id = $12`
	result, err := db.Exec(query, p.FirstName, p.LastName, p.Gender, p.Birthdate,
		p.Address, p.Barangay, p.ContactNumber, p.DisabilityType, p.Disability,
		p.PWDCardIDNo, p.RecentPWDIDUpdateDate, p.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePerson removes a person unless beneficiaries still reference them.
func DeletePerson(db *sql.DB, id string) error {
	return deletePerson(db, id)
}

func deletePerson(q execQuerier, id string) error {
	var dependents int
	err := q.QueryRow(`SELECT COUNT(*) FROM beneficiaries WHERE person_registered = $1`, id).Scan(&dependents)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrConflict
	}

	result, err := q.Exec(`DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePeople removes multiple people in one transaction. The first
// conflict rolls the whole batch back.
func DeletePeople(db *sql.DB, ids []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if err := deletePerson(tx, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportPeople upserts rows by (first name, last name). Re-importing
// identical rows changes nothing.
func ImportPeople(db *sql.DB, people []models.Person) error {
	query := `INSERT INTO people (first_name, last_name, gender, birthdate, address, barangay,
			  contact_number, disability_type, disability, pwd_card_id_no, recent_pwd_id_update_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (first_name, last_name) DO UPDATE
			  SET gender = EXCLUDED.gender,
				  birthdate = EXCLUDED.birthdate,
				  address = EXCLUDED.address,
				  barangay = EXCLUDED.barangay,
				  contact_number = EXCLUDED.contact_number,
				  disability_type = EXCLUDED.disability_type,
				  disability = EXCLUDED.disability,
				  pwd_card_id_no = EXCLUDED.pwd_card_id_no,
				  recent_pwd_id_update_date = EXCLUDED.recent_pwd_id_update_date`
	for _, p := range people {
		if _, err := db.Exec(query, p.FirstName, p.LastName, p.Gender, p.Birthdate,
			p.Address, p.Barangay, p.ContactNumber, p.DisabilityType, p.Disability,
			p.PWDCardIDNo, p.RecentPWDIDUpdateDate); err != nil {
			return err
		}
	}
	return nil
}

// GetRegisteredBarangays returns the distinct barangay values present in the
// people table, for the filter dropdown.
func GetRegisteredBarangays(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT barangay FROM people ORDER BY barangay ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var barangays []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		barangays = append(barangays, b)
	}
	return barangays, rows.Err()
}
