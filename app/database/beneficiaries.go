package database

import (
	"database/sql"
	"fmt"

	"pdao/app/models"
)

// BeneficiaryRow is a beneficiary joined with the names of the records it
// links, for list display.
type BeneficiaryRow struct {
	models.Beneficiary
	ProgramName string `json:"program_name"`
	PersonName  string `json:"person_name"`
	BenefitName string `json:"benefit_name"`
}

// GetBeneficiaries returns one page of beneficiaries with the linked
// program, person, and benefit names joined in.
func GetBeneficiaries(db *sql.DB, page, limit int) ([]BeneficiaryRow, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM beneficiaries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageWindow(page, limit)
	// LEFT JOIN on benefits: rows whose benefit was since deleted still list,
	// with an empty benefit name
	query := `SELECT be.id, be.program_enrolled, be.person_registered, be.benefit_delivered,
				   pr.name, pe.last_name || ', ' || pe.first_name, COALESCE(bn.name, '')
			  FROM beneficiaries be
			  JOIN programs pr ON be.program_enrolled = pr.id
			  JOIN people pe ON be.person_registered = pe.id
			  LEFT JOIN benefits bn ON be.benefit_delivered = bn.id
			  ORDER BY pr.name ASC, pe.last_name ASC, pe.first_name ASC
			  LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var beneficiaries []BeneficiaryRow
	for rows.Next() {
		var b BeneficiaryRow
		if err := rows.Scan(&b.ID, &b.ProgramEnrolled, &b.PersonRegistered,
			&b.BenefitDelivered, &b.ProgramName, &b.PersonName, &b.BenefitName); err != nil {
			return nil, 0, err
		}
		beneficiaries = append(beneficiaries, b)
	}
	return beneficiaries, total, rows.Err()
}

// GetBeneficiariesByProgram returns every enrollment event recorded against
// one program.
func GetBeneficiariesByProgram(db *sql.DB, programID string) ([]models.Beneficiary, error) {
	query := `SELECT id, program_enrolled, person_registered, benefit_delivered
			  FROM beneficiaries WHERE program_enrolled = $1`
	rows, err := db.Query(query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var beneficiaries []models.Beneficiary
	for rows.Next() {
		var b models.Beneficiary
		if err := rows.Scan(&b.ID, &b.ProgramEnrolled, &b.PersonRegistered, &b.BenefitDelivered); err != nil {
			return nil, err
		}
		beneficiaries = append(beneficiaries, b)
	}
	return beneficiaries, rows.Err()
}

// CreateBeneficiary records one enrollment event. All three references must
// resolve to existing records.
func CreateBeneficiary(db *sql.DB, b *models.Beneficiary) error {
	if _, err := GetProgramByID(db, b.ProgramEnrolled); err != nil {
		return fmt.Errorf("program %s: %w", b.ProgramEnrolled, err)
	}
	if _, err := GetPersonByID(db, b.PersonRegistered); err != nil {
		return fmt.Errorf("person %s: %w", b.PersonRegistered, err)
	}
	if _, err := GetBenefitByID(db, b.BenefitDelivered); err != nil {
		return fmt.Errorf("benefit %s: %w", b.BenefitDelivered, err)
	}

	query := `INSERT INTO beneficiaries (program_enrolled, person_registered, benefit_delivered)
			  VALUES ($1, $2, $3) RETURNING id`
	return db.QueryRow(query, b.ProgramEnrolled, b.PersonRegistered, b.BenefitDelivered).Scan(&b.ID)
}

// DeleteBeneficiary removes one enrollment event. Nothing references
// beneficiaries, so no guard applies.
func DeleteBeneficiary(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM beneficiaries WHERE id = $1`, id)
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
