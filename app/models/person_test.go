package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPersonName(t *testing.T) {
	p := Person{FirstName: "Maria", LastName: "Santos"}
	assert.Equal(t, "Santos, Maria", p.Name())
}

func TestPersonAge(t *testing.T) {
	now := date(2026, time.June, 15)

	tests := []struct {
		name      string
		birthdate time.Time
		want      int
	}{
		{"birthday already passed this year", date(1990, time.March, 10), 36},
		{"birthday later this year", date(1990, time.October, 2), 35},
		{"birthday today", date(1990, time.June, 15), 36},
		{"birthday tomorrow", date(1990, time.June, 16), 35},
		{"born this year", date(2026, time.January, 1), 0},
		{"birthdate in the future clamps to zero", date(2027, time.January, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Person{Birthdate: tt.birthdate}
			assert.Equal(t, tt.want, p.Age(now))
		})
	}
}

func TestPersonPWDIDExpired(t *testing.T) {
	now := date(2026, time.June, 15)

	tests := []struct {
		name    string
		updated time.Time
		want    bool
	}{
		{"updated two years ago", now.AddDate(-2, 0, 0), false},
		{"just under three years", now.Add(-26298*time.Hour + time.Hour), false},
		{"exactly three years", now.Add(-26298 * time.Hour), true}, // 3 * 365.25 days
		{"three years and a day", now.AddDate(-3, 0, -1), true},
		{"five years ago", now.AddDate(-5, 0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Person{RecentPWDIDUpdateDate: tt.updated}
			assert.Equal(t, tt.want, p.PWDIDExpired(now))
		})
	}
}

func TestPersonCodeMatched(t *testing.T) {
	tests := []struct {
		name     string
		cardID   string
		barangay string
		want     bool
	}{
		{"code and barangay agree", "007-2024-001", "Pulanglupa Uno", true},
		{"code maps to a different barangay", "007-2024-001", "Zapote", false},
		{"unknown code", "999-2024-001", "Pulanglupa Uno", false},
		{"card id too short", "07", "Pulanglupa Uno", false},
		{"empty card id", "", "Pulanglupa Uno", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Person{PWDCardIDNo: tt.cardID, Barangay: tt.barangay}
			assert.Equal(t, tt.want, p.CodeMatched())
		})
	}
}
