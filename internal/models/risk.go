package models

import "time"

type RiskStatus string

const (
	RiskIdentified     RiskStatus = "identified"
	RiskUnderAnalysis  RiskStatus = "under_analysis"
	RiskUnderTreatment RiskStatus = "under_treatment"
	RiskMitigated      RiskStatus = "mitigated"
	RiskAccepted       RiskStatus = "accepted"
)

func (s RiskStatus) Valid() bool {
	switch s {
	case RiskIdentified,
		RiskUnderAnalysis,
		RiskUnderTreatment,
		RiskMitigated,
		RiskAccepted:
		return true
	}
	return false
}

// Risk: запись реестра рисков; уровень риска не хранится, считается при чтении
type Risk struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Threat        string     `gorm:"type:text" json:"threat"`
	Vulnerability string     `gorm:"type:text" json:"vulnerability"`
	Impact        int        `gorm:"not null" json:"impact"`      // 1..5
	Probability   int        `gorm:"not null" json:"probability"` // 1..5
	Status        RiskStatus `gorm:"type:varchar(32);index;not null" json:"status"`
	Treatment     string     `gorm:"type:text" json:"treatment"`
	Responsible   string     `gorm:"size:255" json:"responsible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RiskPatch struct {
	Name          *string
	Threat        *string
	Vulnerability *string
	Impact        *int
	Probability   *int
	Status        *RiskStatus
	Treatment     *string
	Responsible   *string
}
