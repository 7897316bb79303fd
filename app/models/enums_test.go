package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidation(t *testing.T) {
	assert.True(t, Assistance.Valid())
	assert.True(t, ProgramKind.Valid())
	assert.False(t, ProgramType("Outreach").Valid())
	assert.False(t, ProgramType("").Valid())

	assert.True(t, SemiAnnual.Valid())
	assert.False(t, Frequency("Weekly").Valid())

	assert.True(t, Medical.Valid())
	assert.False(t, AssistanceType("Housing").Valid())

	assert.True(t, Female.Valid())
	assert.False(t, Gender("female").Valid())

	assert.True(t, Intellectual.Valid())
	assert.False(t, DisabilityType("Temporary").Valid())

	assert.True(t, Government.Valid())
	assert.False(t, BenefactorType("NGO").Valid())
}

func TestBarangayLookup(t *testing.T) {
	name, ok := BarangayFromCode("007")
	assert.True(t, ok)
	assert.Equal(t, "Pulanglupa Uno", name)

	_, ok = BarangayFromCode("021")
	assert.False(t, ok)

	assert.True(t, ValidBarangay("Talon Singko"))
	assert.False(t, ValidBarangay("Poblacion"))

	assert.Len(t, Barangays, 20)
}
