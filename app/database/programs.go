package database

import (
	"database/sql"
	"strings"

	"pdao/app/models"
)

// ProgramFilters represents filtering, sorting, and pagination options for
// the program list.
type ProgramFilters struct {
	NameSort             string // "az" or "za"
	TypeFilter           string // comma-separated ProgramType values
	FrequencyFilter      string // comma-separated Frequency values
	AssistanceTypeFilter string // comma-separated AssistanceType values
	Page                 int
	Limit                int
}

// buildProgramListQuery assembles the WHERE/ORDER BY portion shared by the
// list and count queries.
func buildProgramListQuery(f ProgramFilters) (where string, orderBy string, args []interface{}) {
	var clauses []string

	if values := splitCSV(f.TypeFilter); len(values) > 0 {
		var clause string
		clause, args = inClause("program_type", values, args)
		clauses = append(clauses, clause)
	}
	if values := splitCSV(f.FrequencyFilter); len(values) > 0 {
		var clause string
		clause, args = inClause("frequency", values, args)
		clauses = append(clauses, clause)
	}
	if values := splitCSV(f.AssistanceTypeFilter); len(values) > 0 {
		var clause string
		clause, args = inClause("assistance_type", values, args)
		clauses = append(clauses, clause)
	}

	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}
	orderBy = "ORDER BY name " + sortDirection(f.NameSort)
	return where, orderBy, args
}

// GetPrograms returns one page of programs plus the total count matching the
// filters.
func GetPrograms(db *sql.DB, f ProgramFilters) ([]models.Program, int, error) {
	where, orderBy, args := buildProgramListQuery(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM programs " + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageWindow(f.Page, f.Limit)
	args = append(args, limit, offset)
	query := `SELECT id, name, program_type, frequency, assistance_type, creation_date, recent_update_date
			  FROM programs ` + where + " " + orderBy +
		" LIMIT $" + itoa(len(args)-1) + " OFFSET $" + itoa(len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.ProgramType, &p.Frequency,
			&p.AssistanceType, &p.CreationDate, &p.RecentUpdateDate); err != nil {
			return nil, 0, err
		}
		programs = append(programs, p)
	}
	return programs, total, rows.Err()
}

func GetProgramByID(db *sql.DB, id string) (*models.Program, error) {
	p := &models.Program{}
	query := `SELECT id, name, program_type, frequency, assistance_type, creation_date, recent_update_date
			  FROM programs WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.ProgramType,
		&p.Frequency, &p.AssistanceType, &p.CreationDate, &p.RecentUpdateDate)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreateProgram(db *sql.DB, p *models.Program) error {
	query := `INSERT INTO programs (name, program_type, frequency, assistance_type, creation_date, recent_update_date)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, creation_date, recent_update_date`
	return db.QueryRow(query, p.Name, p.ProgramType, p.Frequency, p.AssistanceType).
		Scan(&p.ID, &p.CreationDate, &p.RecentUpdateDate)
}

func UpdateProgram(db *sql.DB, p *models.Program) error {
	query := `UPDATE programs
			  SET name = $1, program_type = $2, frequency = $3, assistance_type = $4, recent_update_date = NOW()
			  WHERE id = $5`
	result, err := db.Exec(query, p.Name, p.ProgramType, p.Frequency, p.AssistanceType, p.ID)
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

// DeleteProgram removes a program unless beneficiaries still reference it,
// in which case it returns ErrConflict and leaves the program untouched.
func DeleteProgram(db *sql.DB, id string) error {
	return deleteProgram(db, id)
}

func deleteProgram(q execQuerier, id string) error {
	var dependents int
	err := q.QueryRow(`SELECT COUNT(*) FROM beneficiaries WHERE program_enrolled = $1`, id).Scan(&dependents)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrConflict
	}

	result, err := q.Exec(`DELETE FROM programs WHERE id = $1`, id)
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

// DeletePrograms removes multiple programs in one transaction, applying the
// beneficiary guard to each id. The first conflict rolls the whole batch
// back; either every program is removed or none are.
func DeletePrograms(db *sql.DB, ids []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if err := deleteProgram(tx, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportPrograms upserts rows by program name. Re-importing identical rows
// changes nothing.
func ImportPrograms(db *sql.DB, programs []models.Program) error {
	query := `INSERT INTO programs (name, program_type, frequency, assistance_type, creation_date, recent_update_date)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  ON CONFLICT (name) DO UPDATE
			  SET program_type = EXCLUDED.program_type,
				  frequency = EXCLUDED.frequency,
				  assistance_type = EXCLUDED.assistance_type,
				  recent_update_date = NOW()`
	for _, p := range programs {
		if _, err := db.Exec(query, p.Name, p.ProgramType, p.Frequency, p.AssistanceType); err != nil {
			return err
		}
	}
	return nil
}
