package models

// ProgramType defines the possible type values for a program.
type ProgramType string

const (
	Assistance  ProgramType = "Assistance"
	Initiative  ProgramType = "Initiative"
	Service     ProgramType = "Service"
	ProgramKind ProgramType = "Program"
)

// Valid reports whether the value is one of the declared program types.
func (p ProgramType) Valid() bool {
	switch p {
	case Assistance, Initiative, Service, ProgramKind:
		return true
	}
	return false
}

// Frequency defines how often a program runs.
type Frequency string

const (
	Monthly    Frequency = "Monthly"
	Quarterly  Frequency = "Quarterly"
	SemiAnnual Frequency = "Semi-Annual"
	Yearly     Frequency = "Yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case Monthly, Quarterly, SemiAnnual, Yearly:
		return true
	}
	return false
}

// AssistanceType defines the kind of assistance a program provides.
type AssistanceType string

const (
	Educational AssistanceType = "Educational"
	Financial   AssistanceType = "Financial"
	Medical     AssistanceType = "Medical"
)

func (a AssistanceType) Valid() bool {
	switch a {
	case Educational, Financial, Medical:
		return true
	}
	return false
}

// Gender defines the possible gender values for a person.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case Male, Female, Other:
		return true
	}
	return false
}

// DisabilityType defines the registered disability categories.
type DisabilityType string

const (
	Physical     DisabilityType = "Physical"
	Sensory      DisabilityType = "Sensory"
	Intellectual DisabilityType = "Intellectual"
	Mental       DisabilityType = "Mental"
)

func (d DisabilityType) Valid() bool {
	switch d {
	case Physical, Sensory, Intellectual, Mental:
		return true
	}
	return false
}

// BenefactorType defines the kind of donor a benefactor is.
type BenefactorType string

const (
	Individual   BenefactorType = "Individual"
	Government   BenefactorType = "Government"
	Organization BenefactorType = "Organization"
)

func (b BenefactorType) Valid() bool {
	switch b {
	case Individual, Government, Organization:
		return true
	}
	return false
}
