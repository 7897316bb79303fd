package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"Monthly"}, splitCSV("Monthly"))
	assert.Equal(t, []string{"Monthly", "Yearly"}, splitCSV("Monthly,Yearly"))
	assert.Equal(t, []string{"Monthly", "Yearly"}, splitCSV(" Monthly , Yearly "))
	assert.Equal(t, []string{"Monthly"}, splitCSV("Monthly,,"))
}

func TestInClause(t *testing.T) {
	clause, args := inClause("gender", []string{"Male", "Female"}, nil)
	assert.Equal(t, "gender IN ($1, $2)", clause)
	assert.Equal(t, []interface{}{"Male", "Female"}, args)

	// Placeholders continue from the existing argument list
	clause, args = inClause("barangay", []string{"Zapote"}, []interface{}{"Male"})
	assert.Equal(t, "barangay IN ($2)", clause)
	assert.Equal(t, []interface{}{"Male", "Zapote"}, args)
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, "ASC", sortDirection("az"))
	assert.Equal(t, "ASC", sortDirection("asc"))
	assert.Equal(t, "ASC", sortDirection("oldest"))
	assert.Equal(t, "DESC", sortDirection("za"))
	assert.Equal(t, "DESC", sortDirection("desc"))
	assert.Equal(t, "DESC", sortDirection("newest"))
	assert.Equal(t, "ASC", sortDirection(""))
	assert.Equal(t, "ASC", sortDirection("bogus"))
}

func TestPageWindow(t *testing.T) {
	limit, offset := pageWindow(0, 0)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = pageWindow(1, 20)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = pageWindow(3, 10)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)

	limit, offset = pageWindow(-1, -5)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}

func TestBuildProgramListQuery(t *testing.T) {
	where, orderBy, args := buildProgramListQuery(ProgramFilters{})
	assert.Empty(t, where)
	assert.Equal(t, "ORDER BY name ASC", orderBy)
	assert.Empty(t, args)

	where, orderBy, args = buildProgramListQuery(ProgramFilters{
		NameSort:        "za",
		TypeFilter:      "Assistance,Service",
		FrequencyFilter: "Monthly",
	})
	assert.Equal(t, "WHERE program_type IN ($1, $2) AND frequency IN ($3)", where)
	assert.Equal(t, "ORDER BY name DESC", orderBy)
	assert.Equal(t, []interface{}{"Assistance", "Service", "Monthly"}, args)
}

func TestBuildPersonListQuery(t *testing.T) {
	where, orderBy, args := buildPersonListQuery(PersonFilters{})
	assert.Empty(t, where)
	assert.Equal(t, "ORDER BY last_name ASC, first_name ASC", orderBy)
	assert.Empty(t, args)

	where, orderBy, args = buildPersonListQuery(PersonFilters{
		LastNameSort:         "az",
		BirthdateSort:        "newest",
		GenderFilter:         "Female",
		BarangayFilter:       "Zapote,Pulanglupa Uno",
		DisabilityTypeFilter: "Physical",
	})
	assert.Equal(t, "WHERE gender = $1 AND barangay IN ($2, $3) AND disability_type IN ($4)", where)
	assert.Equal(t, "ORDER BY last_name ASC, birthdate DESC", orderBy)
	assert.Equal(t, []interface{}{"Female", "Zapote", "Pulanglupa Uno", "Physical"}, args)
}

func TestBuildBenefitListQuery(t *testing.T) {
	where, orderBy, args := buildBenefitListQuery(BenefitFilters{})
	assert.Empty(t, where)
	assert.Equal(t, "ORDER BY b.name ASC", orderBy)
	assert.Empty(t, args)

	where, orderBy, args = buildBenefitListQuery(BenefitFilters{
		QuantitySort:     "desc",
		DateSort:         "oldest",
		BenefactorFilter: "City Hall",
	})
	assert.Equal(t, "WHERE bf.name IN ($1)", where)
	assert.Equal(t, "ORDER BY b.quantity DESC, b.date_received ASC", orderBy)
	assert.Equal(t, []interface{}{"City Hall"}, args)
}
