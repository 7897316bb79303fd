package database

import (
	"database/sql"
	"fmt"
	"strings"

	"pdao/app/models"
)

// BenefitFilters represents filtering, sorting, and pagination options for
// the benefit list.
type BenefitFilters struct {
	NameSort         string // "az" or "za"
	QuantitySort     string // "asc" or "desc"
	DateSort         string // "oldest" or "newest"
	BenefactorFilter string // comma-separated benefactor names
	Page             int
	Limit            int
}

// buildBenefitListQuery assembles the WHERE/ORDER BY portion shared by the
// list and count queries. The benefactor filter matches on the joined
// benefactor's name.
func buildBenefitListQuery(f BenefitFilters) (where string, orderBy string, args []interface{}) {
	var clauses []string

	if values := splitCSV(f.BenefactorFilter); len(values) > 0 {
		var clause string
		clause, args = inClause("bf.name", values, args)
		clauses = append(clauses, clause)
	}

	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var keys []string
	if f.NameSort != "" {
		keys = append(keys, "b.name "+sortDirection(f.NameSort))
	}
	if f.QuantitySort != "" {
		keys = append(keys, "b.quantity "+sortDirection(f.QuantitySort))
	}
	if f.DateSort != "" {
		keys = append(keys, "b.date_received "+sortDirection(f.DateSort))
	}
	if len(keys) == 0 {
		keys = append(keys, "b.name ASC")
	}
	orderBy = "ORDER BY " + strings.Join(keys, ", ")

	return where, orderBy, args
}

// GetBenefits returns one page of benefits with their benefactor joined,
// plus the total count matching the filters.
func GetBenefits(db *sql.DB, f BenefitFilters) ([]models.Benefit, int, error) {
	where, orderBy, args := buildBenefitListQuery(f)

	countQuery := `SELECT COUNT(*) FROM benefits b
				   JOIN benefactors bf ON b.benefactor_id = bf.id ` + where
	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageWindow(f.Page, f.Limit)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT b.id, b.name, b.description, b.quantity, b.date_received, b.benefactor_id,
				   bf.id, bf.name, bf.type
			FROM benefits b
			JOIN benefactors bf ON b.benefactor_id = bf.id
			%s %s LIMIT $%d OFFSET $%d`, where, orderBy, len(args)-1, len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var benefits []models.Benefit
	for rows.Next() {
		var b models.Benefit
		var bf models.Benefactor
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Quantity,
			&b.DateReceived, &b.BenefactorID, &bf.ID, &bf.Name, &bf.Type); err != nil {
			return nil, 0, err
		}
		b.Benefactor = &bf
		benefits = append(benefits, b)
	}
	return benefits, total, rows.Err()
}

func GetBenefitByID(db *sql.DB, id string) (*models.Benefit, error) {
	b := &models.Benefit{}
	query := `SELECT id, name, description, quantity, date_received, benefactor_id
			  FROM benefits WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&b.ID, &b.Name, &b.Description,
		&b.Quantity, &b.DateReceived, &b.BenefactorID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func CreateBenefit(db *sql.DB, b *models.Benefit) error {
	query := `INSERT INTO benefits (name, description, quantity, date_received, benefactor_id)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return db.QueryRow(query, b.Name, b.Description, b.Quantity, b.DateReceived, b.BenefactorID).
		Scan(&b.ID)
}

func UpdateBenefit(db *sql.DB, b *models.Benefit) error {
	query := `UPDATE benefits
			  SET name = $1, description = $2, quantity = $3, date_received = $4, benefactor_id = $5
			  WHERE id = $6`
	result, err := db.Exec(query, b.Name, b.Description, b.Quantity, b.DateReceived, b.BenefactorID, b.ID)
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

// DeleteBenefit removes a benefit unless beneficiaries still reference it.
func DeleteBenefit(db *sql.DB, id string) error {
	return deleteBenefit(db, id)
}

func deleteBenefit(q execQuerier, id string) error {
	var dependents int
	err := q.QueryRow(`SELECT COUNT(*) FROM beneficiaries WHERE benefit_delivered = $1`, id).Scan(&dependents)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrConflict
	}

	result, err := q.Exec(`DELETE FROM benefits WHERE id = $1`, id)
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

// DeleteBenefits removes multiple benefits in one transaction. The first
// conflict rolls the whole batch back.
func DeleteBenefits(db *sql.DB, ids []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if err := deleteBenefit(tx, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// BenefitImportRow is one row of a bulk import, carrying the benefactor by
// name rather than id.
type BenefitImportRow struct {
	Benefit        models.Benefit
	BenefactorName string
}

// ImportBenefits upserts rows by benefit name, resolving each row's
// benefactor by name first. An unknown benefactor fails the import.
func ImportBenefits(db *sql.DB, rows []BenefitImportRow) error {
	query := `INSERT INTO benefits (name, description, quantity, date_received, benefactor_id)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (name) DO UPDATE
			  SET description = EXCLUDED.description,
				  quantity = EXCLUDED.quantity,
				  date_received = EXCLUDED.date_received,
				  benefactor_id = EXCLUDED.benefactor_id`
	for _, row := range rows {
		benefactor, err := GetBenefactorByName(db, row.BenefactorName)
		if err != nil {
			return fmt.Errorf("benefactor %q: %w", row.BenefactorName, err)
		}
		b := row.Benefit
		if _, err := db.Exec(query, b.Name, b.Description, b.Quantity, b.DateReceived, benefactor.ID); err != nil {
			return err
		}
	}
	return nil
}
