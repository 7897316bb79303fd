package models

import "time"

type Program struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ProgramType      ProgramType    `json:"program_type"`
	Frequency        Frequency      `json:"frequency"`
	AssistanceType   AssistanceType `json:"assistance_type"`
	CreationDate     time.Time      `json:"creation_date"`
	RecentUpdateDate time.Time      `json:"recent_update_date"`
}
