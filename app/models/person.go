package models

import (
	"fmt"
	"time"
)

type Person struct {
	ID                    string         `json:"id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	Gender                Gender         `json:"gender"`
	Birthdate             time.Time      `json:"birthdate"`
	Address               string         `json:"address"`
	Barangay              string         `json:"barangay"`
	ContactNumber         string         `json:"contact_number"`
	DisabilityType        DisabilityType `json:"disability_type"`
	Disability            string         `json:"disability"`
	PWDCardIDNo           string         `json:"pwd_card_id_no"`
	RecentPWDIDUpdateDate time.Time      `json:"recent_pwd_id_update_date"`
}

// Name returns the display name in "last, first" order.
func (p *Person) Name() string {
	return fmt.Sprintf("%s, %s", p.LastName, p.FirstName)
}

// Age returns the person's age in whole years at the given time, using
// calendar arithmetic: the year difference, minus one if now's month/day
// falls before the birthday.
func (p *Person) Age(now time.Time) int {
	years := now.Year() - p.Birthdate.Year()
	if now.Month() < p.Birthdate.Month() ||
		(now.Month() == p.Birthdate.Month() && now.Day() < p.Birthdate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// PWDIDExpired reports whether the card's last update was 3.0 or more years
// ago, counting a year as exactly 365.25 days.
func (p *Person) PWDIDExpired(now time.Time) bool {
	elapsedDays := now.Sub(p.RecentPWDIDUpdateDate).Hours() / 24
	return elapsedDays/365.25 >= 3.0
}

// CodeMatched reports whether the first three characters of the PWD card ID
// map to the same barangay name stored on the record.
func (p *Person) CodeMatched() bool {
	if len(p.PWDCardIDNo) < 3 {
		return false
	}
	name, ok := BarangayFromCode(p.PWDCardIDNo[:3])
	return ok && name == p.Barangay
}
