package database

import (
	"database/sql"
	"errors"

	"pdao/app/aggregate"
	"pdao/app/models"
)

// SummaryStore adapts the SQL layer to the aggregation engine's Store
// interface. It is read-only.
type SummaryStore struct {
	DB *sql.DB
}

func NewSummaryStore(db *sql.DB) *SummaryStore {
	return &SummaryStore{DB: db}
}

func (s *SummaryStore) ListPrograms() ([]models.Program, error) {
	rows, err := s.DB.Query(`SELECT id, name, program_type, frequency, assistance_type, creation_date, recent_update_date
							 FROM programs ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.ProgramType, &p.Frequency,
			&p.AssistanceType, &p.CreationDate, &p.RecentUpdateDate); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (s *SummaryStore) ListPeople() ([]models.Person, error) {
	rows, err := s.DB.Query("SELECT " + personColumns + " FROM people ORDER BY last_name ASC, first_name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := scanPerson(rows, &p); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (s *SummaryStore) ListBenefactors() ([]models.Benefactor, error) {
	return GetBenefactors(s.DB)
}

func (s *SummaryStore) count(query string, args ...interface{}) (int, error) {
	var n int
	err := s.DB.QueryRow(query, args...).Scan(&n)
	return n, err
}

func (s *SummaryStore) CountPrograms() (int, error) {
	return s.count(`SELECT COUNT(*) FROM programs`)
}

func (s *SummaryStore) CountPeople() (int, error) {
	return s.count(`SELECT COUNT(*) FROM people`)
}

func (s *SummaryStore) CountBenefactors() (int, error) {
	return s.count(`SELECT COUNT(*) FROM benefactors`)
}

func (s *SummaryStore) CountBenefits() (int, error) {
	return s.count(`SELECT COUNT(*) FROM benefits`)
}

func (s *SummaryStore) CountProgramsByType(t models.ProgramType) (int, error) {
	return s.count(`SELECT COUNT(*) FROM programs WHERE program_type = $1`, t)
}

func (s *SummaryStore) CountProgramsByFrequency(f models.Frequency) (int, error) {
	return s.count(`SELECT COUNT(*) FROM programs WHERE frequency = $1`, f)
}

func (s *SummaryStore) CountProgramsByAssistance(a models.AssistanceType) (int, error) {
	return s.count(`SELECT COUNT(*) FROM programs WHERE assistance_type = $1`, a)
}

func (s *SummaryStore) CountPeopleByGender(g models.Gender) (int, error) {
	return s.count(`SELECT COUNT(*) FROM people WHERE gender = $1`, g)
}

func (s *SummaryStore) CountPeopleByDisability(d models.DisabilityType) (int, error) {
	return s.count(`SELECT COUNT(*) FROM people WHERE disability_type = $1`, d)
}

func (s *SummaryStore) CountBenefactorsByType(t models.BenefactorType) (int, error) {
	return s.count(`SELECT COUNT(*) FROM benefactors WHERE type = $1`, t)
}

func (s *SummaryStore) BeneficiariesByProgram(programID string) ([]models.Beneficiary, error) {
	return GetBeneficiariesByProgram(s.DB, programID)
}

// BenefitByID returns aggregate.ErrNotFound for a dangling reference so the
// engine can skip it instead of failing the rollup.
func (s *SummaryStore) BenefitByID(id string) (*models.Benefit, error) {
	benefit, err := GetBenefitByID(s.DB, id)
	if errors.Is(err, ErrNotFound) {
		return nil, aggregate.ErrNotFound
	}
	return benefit, err
}

var _ aggregate.Store = (*SummaryStore)(nil)
