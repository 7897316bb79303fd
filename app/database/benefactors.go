package database

import (
	"database/sql"

	"pdao/app/models"
)

// GetBenefactors returns all benefactors sorted by name.
func GetBenefactors(db *sql.DB) ([]models.Benefactor, error) {
	rows, err := db.Query(`SELECT id, name, type FROM benefactors ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var benefactors []models.Benefactor
	for rows.Next() {
		var b models.Benefactor
		if err := rows.Scan(&b.ID, &b.Name, &b.Type); err != nil {
			return nil, err
		}
		benefactors = append(benefactors, b)
	}
	return benefactors, rows.Err()
}

func GetBenefactorByID(db *sql.DB, id string) (*models.Benefactor, error) {
	b := &models.Benefactor{}
	err := db.QueryRow(`SELECT id, name, type FROM benefactors WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Type)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func GetBenefactorByName(db *sql.DB, name string) (*models.Benefactor, error) {
	b := &models.Benefactor{}
	err := db.QueryRow(`SELECT id, name, type FROM benefactors WHERE name = $1`, name).
		Scan(&b.ID, &b.Name, &b.Type)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func CreateBenefactor(db *sql.DB, b *models.Benefactor) error {
	query := `INSERT INTO benefactors (name, type) VALUES ($1, $2) RETURNING id`
	return db.QueryRow(query, b.Name, b.Type).Scan(&b.ID)
}

func UpdateBenefactor(db *sql.DB, b *models.Benefactor) error {
	result, err := db.Exec(`UPDATE benefactors SET name = $1, type = $2 WHERE id = $3`,
		b.Name, b.Type, b.ID)
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

// DeleteBenefactor removes a benefactor unless benefits still reference it.
func DeleteBenefactor(db *sql.DB, id string) error {
	return deleteBenefactor(db, id)
}

func deleteBenefactor(q execQuerier, id string) error {
	var dependents int
	err := q.QueryRow(`SELECT COUNT(*) FROM benefits WHERE benefactor_id = $1`, id).Scan(&dependents)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrConflict
	}

	result, err := q.Exec(`DELETE FROM benefactors WHERE id = $1`, id)
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

// DeleteBenefactors removes multiple benefactors in one transaction. The
// first conflict rolls the whole batch back.
func DeleteBenefactors(db *sql.DB, ids []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if err := deleteBenefactor(tx, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportBenefactors upserts rows by benefactor name.
func ImportBenefactors(db *sql.DB, benefactors []models.Benefactor) error {
	query := `INSERT INTO benefactors (name, type) VALUES ($1, $2)
			  ON CONFLICT (name) DO UPDATE SET type = EXCLUDED.type`
	for _, b := range benefactors {
		if _, err := db.Exec(query, b.Name, b.Type); err != nil {
			return err
		}
	}
	return nil
}
