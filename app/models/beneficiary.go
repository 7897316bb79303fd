package models

// Beneficiary is one enrollment-and-delivery event linking a person to a
// program and the benefit they received under it. A person may appear any
// number of times under different programs or benefits.
type Beneficiary struct {
	ID               string `json:"id"`
	ProgramEnrolled  string `json:"program_enrolled"`
	PersonRegistered string `json:"person_registered"`
	BenefitDelivered string `json:"benefit_delivered"`
}
