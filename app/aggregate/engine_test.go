package aggregate

import (
	"errors"
	"sort"
	"testing"

	"pdao/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store backed by plain slices.
type fakeStore struct {
	programs      []models.Program
	people        []models.Person
	benefactors   []models.Benefactor
	benefits      map[string]models.Benefit
	beneficiaries []models.Beneficiary

	// failAll makes every method return this error, simulating an
	// unreachable record store.
	failAll error
}

func (f *fakeStore) ListPrograms() ([]models.Program, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	programs := append([]models.Program(nil), f.programs...)
	sort.Slice(programs, func(i, j int) bool { return programs[i].Name < programs[j].Name })
	return programs, nil
}

func (f *fakeStore) ListPeople() ([]models.Person, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	people := append([]models.Person(nil), f.people...)
	sort.Slice(people, func(i, j int) bool {
		if people[i].LastName != people[j].LastName {
			return people[i].LastName < people[j].LastName
		}
		return people[i].FirstName < people[j].FirstName
	})
	return people, nil
}

func (f *fakeStore) ListBenefactors() ([]models.Benefactor, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	benefactors := append([]models.Benefactor(nil), f.benefactors...)
	sort.Slice(benefactors, func(i, j int) bool { return benefactors[i].Name < benefactors[j].Name })
	return benefactors, nil
}

func (f *fakeStore) CountPrograms() (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	return len(f.programs), nil
}

func (f *fakeStore) CountPeople() (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	return len(f.people), nil
}

func (f *fakeStore) CountBenefactors() (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	return len(f.benefactors), nil
}

func (f *fakeStore) CountBenefits() (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	return len(f.benefits), nil
}

func (f *fakeStore) CountProgramsByType(t models.ProgramType) (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	n := 0
	for _, p := range f.programs {
		if p.ProgramType == t {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountProgramsByFrequency(freq models.Frequency) (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	n := 0
	for _, p := range f.programs {
		if p.Frequency == freq {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountProgramsByAssistance(a models.AssistanceType) (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	n := 0
	for _, p := range f.programs {
		if p.AssistanceType == a {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountPeopleByGender(g models.Gender) (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	n := 0
	for _, p := range f.people {
		if p.Gender == g {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountPeopleByDisability(d models.DisabilityType) (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	n := 0
	for _, p := range f.people {
		if p.DisabilityType == d {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountBenefactorsByType(t models.BenefactorType) (int, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	n := 0
	for _, b := range f.benefactors {
		if b.Type == t {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) BeneficiariesByProgram(programID string) ([]models.Beneficiary, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var matched []models.Beneficiary
	for _, b := range f.beneficiaries {
		if b.ProgramEnrolled == programID {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (f *fakeStore) BenefitByID(id string) (*models.Benefit, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	benefit, ok := f.benefits[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &benefit, nil
}

// feedingProgramStore builds the scenario: program "Feeding Program" with 3
// beneficiary rows: (person A, benefit X from G1), (person A, benefit Y from
// G2), (person B, benefit X from G1).
func feedingProgramStore() *fakeStore {
	return &fakeStore{
		programs: []models.Program{
			{ID: "prog-1", Name: "Feeding Program", ProgramType: models.Assistance,
				Frequency: models.Monthly, AssistanceType: models.Medical},
		},
		benefactors: []models.Benefactor{
			{ID: "g1", Name: "City Hall", Type: models.Government},
			{ID: "g2", Name: "Rotary Club", Type: models.Organization},
		},
		benefits: map[string]models.Benefit{
			"x": {ID: "x", Name: "Rice Pack", BenefactorID: "g1"},
			"y": {ID: "y", Name: "Vitamins", BenefactorID: "g2"},
		},
		beneficiaries: []models.Beneficiary{
			{ID: "b1", ProgramEnrolled: "prog-1", PersonRegistered: "a", BenefitDelivered: "x"},
			{ID: "b2", ProgramEnrolled: "prog-1", PersonRegistered: "a", BenefitDelivered: "y"},
			{ID: "b3", ProgramEnrolled: "prog-1", PersonRegistered: "b", BenefitDelivered: "x"},
		},
	}
}

func TestProgramRollup_FeedingProgramScenario(t *testing.T) {
	engine := New(feedingProgramStore())

	rollup, err := engine.ProgramRollup("prog-1")
	require.NoError(t, err)

	assert.Equal(t, 3, rollup.BeneficiaryCount)
	assert.Equal(t, 2, rollup.PeopleCount)
	assert.Equal(t, 2, rollup.BenefitCount)
	assert.Equal(t, 2, rollup.BenefactorCount)
}

func TestProgramRollup_NoBeneficiariesYieldsZeroes(t *testing.T) {
	store := feedingProgramStore()
	store.programs = append(store.programs, models.Program{ID: "prog-2", Name: "Wheelchair Drive"})
	engine := New(store)

	rollup, err := engine.ProgramRollup("prog-2")
	require.NoError(t, err)

	assert.Equal(t, models.ProgramRollup{ProgramID: "prog-2"}, rollup)
}

func TestProgramRollup_DeduplicatedCountsNeverExceedRaw(t *testing.T) {
	engine := New(feedingProgramStore())

	rollup, err := engine.ProgramRollup("prog-1")
	require.NoError(t, err)

	assert.LessOrEqual(t, rollup.PeopleCount, rollup.BeneficiaryCount)
	assert.LessOrEqual(t, rollup.BenefitCount, rollup.BeneficiaryCount)
}

func TestProgramRollup_Idempotent(t *testing.T) {
	engine := New(feedingProgramStore())

	first, err := engine.ProgramRollup("prog-1")
	require.NoError(t, err)
	second, err := engine.ProgramRollup("prog-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProgramRollup_DanglingBenefitTolerated(t *testing.T) {
	store := feedingProgramStore()
	// Benefit y no longer resolves
	delete(store.benefits, "y")
	engine := New(store)

	rollup, err := engine.ProgramRollup("prog-1")
	require.NoError(t, err)

	// The dangling id still counts as a distinct benefit, but contributes
	// no benefactor.
	assert.Equal(t, 3, rollup.BeneficiaryCount)
	assert.Equal(t, 2, rollup.BenefitCount)
	assert.Equal(t, 1, rollup.BenefactorCount)
}

func TestProgramRollup_StoreFailurePropagates(t *testing.T) {
	store := feedingProgramStore()
	store.failAll = errors.New("connection refused")
	engine := New(store)

	_, err := engine.ProgramRollup("prog-1")
	assert.Error(t, err)
}

func TestCategoryTallies_SumsMatchTotals(t *testing.T) {
	store := feedingProgramStore()
	store.programs = []models.Program{
		{ID: "p1", Name: "A", ProgramType: models.Assistance, Frequency: models.Monthly, AssistanceType: models.Medical},
		{ID: "p2", Name: "B", ProgramType: models.Initiative, Frequency: models.Yearly, AssistanceType: models.Financial},
		{ID: "p3", Name: "C", ProgramType: models.Service, Frequency: models.Quarterly, AssistanceType: models.Educational},
		{ID: "p4", Name: "D", ProgramType: models.Assistance, Frequency: models.SemiAnnual, AssistanceType: models.Medical},
	}
	store.people = []models.Person{
		{ID: "a", FirstName: "Ana", LastName: "Cruz", Gender: models.Female, DisabilityType: models.Physical},
		{ID: "b", FirstName: "Ben", LastName: "Reyes", Gender: models.Male, DisabilityType: models.Sensory},
		{ID: "c", FirstName: "Caloy", LastName: "Santos", Gender: models.Other, DisabilityType: models.Physical},
	}
	engine := New(store)

	report := &models.SummaryReport{}
	require.NoError(t, engine.CategoryTallies(report))
	totals, err := engine.GlobalTotals()
	require.NoError(t, err)

	byType := report.ProgramCountsByType
	assert.Equal(t, totals.Programs, byType.Assistance+byType.Initiative+byType.Service+byType.Program)

	byFreq := report.ProgramCountByFrequency
	assert.Equal(t, totals.Programs, byFreq.Monthly+byFreq.Quarterly+byFreq.SemiAnnual+byFreq.Yearly)

	byGender := report.PeopleCountByGender
	assert.Equal(t, totals.People, byGender.Male+byGender.Female+byGender.Other)

	byBenefactor := report.BenefactorCountByType
	assert.Equal(t, totals.Benefactors, byBenefactor.Individual+byBenefactor.Government+byBenefactor.Organization)
}

func TestBuildReport(t *testing.T) {
	store := feedingProgramStore()
	store.programs = append(store.programs, models.Program{
		ID: "prog-0", Name: "Assistive Devices", ProgramType: models.Service,
		Frequency: models.Yearly, AssistanceType: models.Medical,
	})
	store.people = []models.Person{
		{ID: "b", FirstName: "Ben", LastName: "Reyes", Gender: models.Male, DisabilityType: models.Sensory},
		{ID: "a", FirstName: "Ana", LastName: "Cruz", Gender: models.Female, DisabilityType: models.Physical},
	}
	engine := New(store)

	report, err := engine.BuildReport()
	require.NoError(t, err)

	// Programs sorted by name, each carrying its rollup
	require.Len(t, report.Programs, 2)
	assert.Equal(t, "Assistive Devices", report.Programs[0].Name)
	assert.Equal(t, 0, report.Programs[0].BeneficiaryCount)
	assert.Equal(t, "Feeding Program", report.Programs[1].Name)
	assert.Equal(t, 3, report.Programs[1].BeneficiaryCount)

	// People sorted by (last, first)
	require.Len(t, report.People, 2)
	assert.Equal(t, "Cruz", report.People[0].LastName)

	assert.Equal(t, 2, report.TotalCounts.Benefits)
	assert.Equal(t, 2, report.TotalCounts.Benefactors)
}

func TestBuildReport_NoPartialResultOnFailure(t *testing.T) {
	store := feedingProgramStore()
	store.failAll = errors.New("store unavailable")
	engine := New(store)

	report, err := engine.BuildReport()
	assert.Error(t, err)
	assert.Nil(t, report)
}
