package models

// TotalCounts holds the office-wide record totals shown at the top of the
// summary page.
type TotalCounts struct {
	Programs    int `json:"programs"`
	Benefits    int `json:"benefits"`
	People      int `json:"people"`
	Benefactors int `json:"benefactors"`
}

type ProgramTypeCounts struct {
	Assistance int `json:"assistance"`
	Initiative int `json:"initiative"`
	Service    int `json:"service"`
	Program    int `json:"program"`
}

type FrequencyCounts struct {
	Monthly    int `json:"monthly"`
	Quarterly  int `json:"quarterly"`
	SemiAnnual int `json:"semi_annual"`
	Yearly     int `json:"yearly"`
}

type AssistanceTypeCounts struct {
	Educational int `json:"educational"`
	Financial   int `json:"financial"`
	Medical     int `json:"medical"`
}

type GenderCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

type DisabilityTypeCounts struct {
	Physical     int `json:"physical"`
	Sensory      int `json:"sensory"`
	Intellectual int `json:"intellectual"`
	Mental       int `json:"mental"`
}

type BenefactorTypeCounts struct {
	Individual   int `json:"individual"`
	Government   int `json:"government"`
	Organization int `json:"organization"`
}

// ProgramRollup holds the per-program counts computed by walking the
// beneficiary table. BeneficiaryCount is the raw event count; the other
// three are deduplicated.
type ProgramRollup struct {
	ProgramID        string `json:"program_id"`
	BeneficiaryCount int    `json:"beneficiary_count"`
	BenefitCount     int    `json:"benefit_count"`
	PeopleCount      int    `json:"people_count"`
	BenefactorCount  int    `json:"benefactor_count"`
}

// ProgramSummary is a program row on the summary page with its rollup
// attached.
type ProgramSummary struct {
	Program
	ProgramRollup
}

// SummaryReport is the full payload rendered by the summary page.
type SummaryReport struct {
	TotalCounts              TotalCounts          `json:"total_counts"`
	ProgramCountsByType      ProgramTypeCounts    `json:"program_counts_by_type"`
	ProgramCountByFrequency  FrequencyCounts      `json:"program_count_by_frequency"`
	ProgramCountByAssistance AssistanceTypeCounts `json:"program_count_by_assistance"`
	PeopleCountByGender      GenderCounts         `json:"people_count_by_gender"`
	PeopleCountByDisability  DisabilityTypeCounts `json:"people_count_by_disability"`
	BenefactorCountByType    BenefactorTypeCounts `json:"benefactor_count_by_type"`
	Programs                 []ProgramSummary     `json:"programs"`
	People                   []Person             `json:"people"`
	Benefactors              []Benefactor         `json:"benefactors"`
}
