package models

import "time"

type Benefit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	DateReceived time.Time `json:"date_received"`
	BenefactorID string    `json:"benefactor_id"`

	// Benefactor is populated by list queries that join the benefactor row.
	Benefactor *Benefactor `json:"benefactor,omitempty"`
}
