// Package aggregate computes the cross-collection rollups behind the summary
// page: office-wide totals, category tallies, and the per-program counts
// obtained by walking the beneficiary table and resolving each delivered
// benefit back to its benefactor.
package aggregate

import (
	"errors"
	"fmt"

	"pdao/app/models"
)

// ErrNotFound is returned by Store.BenefitByID when a beneficiary row points
// at a benefit that no longer exists. The engine tolerates it; every other
// store error aborts the computation.
var ErrNotFound = errors.New("record not found")

// Store is the read-only view of the record store the engine needs. List
// methods return rows in presentation order: programs and benefactors by
// name ascending, people by (last name, first name) ascending.
type Store interface {
	ListPrograms() ([]models.Program, error)
	ListPeople() ([]models.Person, error)
	ListBenefactors() ([]models.Benefactor, error)

	CountPrograms() (int, error)
	CountPeople() (int, error)
	CountBenefactors() (int, error)
	CountBenefits() (int, error)

	CountProgramsByType(models.ProgramType) (int, error)
	CountProgramsByFrequency(models.Frequency) (int, error)
	CountProgramsByAssistance(models.AssistanceType) (int, error)
	CountPeopleByGender(models.Gender) (int, error)
	CountPeopleByDisability(models.DisabilityType) (int, error)
	CountBenefactorsByType(models.BenefactorType) (int, error)

	BeneficiariesByProgram(programID string) ([]models.Beneficiary, error)
	BenefitByID(id string) (*models.Benefit, error)
}

type Engine struct {
	store Store
}

func New(store Store) *Engine {
	return &Engine{store: store}
}

// ProgramRollup counts the enrollment events recorded against one program:
// the raw beneficiary count, plus deduplicated people, benefits, and the
// benefactors reached by resolving each distinct benefit. A benefit that no
// longer resolves contributes nothing to the benefactor count and is not an
// error.
func (e *Engine) ProgramRollup(programID string) (models.ProgramRollup, error) {
	rollup := models.ProgramRollup{ProgramID: programID}

	beneficiaries, err := e.store.BeneficiariesByProgram(programID)
	if err != nil {
		return rollup, fmt.Errorf("listing beneficiaries for program %s: %w", programID, err)
	}
	rollup.BeneficiaryCount = len(beneficiaries)

	people := make(map[string]struct{})
	benefits := make(map[string]struct{})
	for _, b := range beneficiaries {
		people[b.PersonRegistered] = struct{}{}
		benefits[b.BenefitDelivered] = struct{}{}
	}
	rollup.PeopleCount = len(people)
	rollup.BenefitCount = len(benefits)

	benefactors := make(map[string]struct{})
	for benefitID := range benefits {
		benefit, err := e.store.BenefitByID(benefitID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return rollup, fmt.Errorf("resolving benefit %s: %w", benefitID, err)
		}
		benefactors[benefit.BenefactorID] = struct{}{}
	}
	rollup.BenefactorCount = len(benefactors)

	return rollup, nil
}

// GlobalTotals returns the total record count for each entity.
func (e *Engine) GlobalTotals() (models.TotalCounts, error) {
	var totals models.TotalCounts
	var err error

	if totals.Programs, err = e.store.CountPrograms(); err != nil {
		return totals, err
	}
	if totals.Benefits, err = e.store.CountBenefits(); err != nil {
		return totals, err
	}
	if totals.People, err = e.store.CountPeople(); err != nil {
		return totals, err
	}
	if totals.Benefactors, err = e.store.CountBenefactors(); err != nil {
		return totals, err
	}
	return totals, nil
}

// CategoryTallies fills the per-category count groups for programs, people,
// and benefactors. Records whose field holds an out-of-enum value fall into
// no bucket.
func (e *Engine) CategoryTallies(report *models.SummaryReport) error {
	var err error

	byType := &report.ProgramCountsByType
	if byType.Assistance, err = e.store.CountProgramsByType(models.Assistance); err != nil {
		return err
	}
	if byType.Initiative, err = e.store.CountProgramsByType(models.Initiative); err != nil {
		return err
	}
	if byType.Service, err = e.store.CountProgramsByType(models.Service); err != nil {
		return err
	}
	if byType.Program, err = e.store.CountProgramsByType(models.ProgramKind); err != nil {
		return err
	}

	byFreq := &report.ProgramCountByFrequency
	if byFreq.Monthly, err = e.store.CountProgramsByFrequency(models.Monthly); err != nil {
		return err
	}
	if byFreq.Quarterly, err = e.store.CountProgramsByFrequency(models.Quarterly); err != nil {
		return err
	}
	if byFreq.SemiAnnual, err = e.store.CountProgramsByFrequency(models.SemiAnnual); err != nil {
		return err
	}
	if byFreq.Yearly, err = e.store.CountProgramsByFrequency(models.Yearly); err != nil {
		return err
	}

	byAssist := &report.ProgramCountByAssistance
	if byAssist.Educational, err = e.store.CountProgramsByAssistance(models.Educational); err != nil {
		return err
	}
	if byAssist.Financial, err = e.store.CountProgramsByAssistance(models.Financial); err != nil {
		return err
	}
	if byAssist.Medical, err = e.store.CountProgramsByAssistance(models.Medical); err != nil {
		return err
	}

	byGender := &report.PeopleCountByGender
	if byGender.Male, err = e.store.CountPeopleByGender(models.Male); err != nil {
		return err
	}
	if byGender.Female, err = e.store.CountPeopleByGender(models.Female); err != nil {
		return err
	}
	if byGender.Other, err = e.store.CountPeopleByGender(models.Other); err != nil {
		return err
	}

	byDisability := &report.PeopleCountByDisability
	if byDisability.Physical, err = e.store.CountPeopleByDisability(models.Physical); err != nil {
		return err
	}
	if byDisability.Sensory, err = e.store.CountPeopleByDisability(models.Sensory); err != nil {
		return err
	}
	if byDisability.Intellectual, err = e.store.CountPeopleByDisability(models.Intellectual); err != nil {
		return err
	}
	if byDisability.Mental, err = e.store.CountPeopleByDisability(models.Mental); err != nil {
		return err
	}

	byBenefactor := &report.BenefactorCountByType
	if byBenefactor.Individual, err = e.store.CountBenefactorsByType(models.Individual); err != nil {
		return err
	}
	if byBenefactor.Government, err = e.store.CountBenefactorsByType(models.Government); err != nil {
		return err
	}
	if byBenefactor.Organization, err = e.store.CountBenefactorsByType(models.Organization); err != nil {
		return err
	}

	return nil
}

// BuildReport assembles the complete summary payload. Any store failure
// aborts the whole report; no partial result is returned.
func (e *Engine) BuildReport() (*models.SummaryReport, error) {
	report := &models.SummaryReport{}

	totals, err := e.GlobalTotals()
	if err != nil {
		return nil, fmt.Errorf("computing totals: %w", err)
	}
	report.TotalCounts = totals

	if err := e.CategoryTallies(report); err != nil {
		return nil, fmt.Errorf("computing category tallies: %w", err)
	}

	programs, err := e.store.ListPrograms()
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	report.Programs = make([]models.ProgramSummary, 0, len(programs))
	for _, p := range programs {
		rollup, err := e.ProgramRollup(p.ID)
		if err != nil {
			return nil, err
		}
		report.Programs = append(report.Programs, models.ProgramSummary{
			Program:       p,
			ProgramRollup: rollup,
		})
	}

	if report.People, err = e.store.ListPeople(); err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	if report.Benefactors, err = e.store.ListBenefactors(); err != nil {
		return nil, fmt.Errorf("listing benefactors: %w", err)
	}

	return report, nil
}
