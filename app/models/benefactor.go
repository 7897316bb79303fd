package models

type Benefactor struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type BenefactorType `json:"type"`
}
