package models

import "time"

type ControlStatus string

const (
	ControlNotImplemented ControlStatus = "not_implemented"
	ControlInProgress     ControlStatus = "in_progress"
	ControlImplemented    ControlStatus = "implemented"
	ControlUnderReview    ControlStatus = "under_review"
	ControlCertified      ControlStatus = "certified"
)

// ControlStatuses lists every status in display order.
var ControlStatuses = []ControlStatus{
	ControlNotImplemented,
	ControlInProgress,
	ControlImplemented,
	ControlUnderReview,
	ControlCertified,
}

func (s ControlStatus) Valid() bool {
	switch s {
	case ControlNotImplemented,
		ControlInProgress,
		ControlImplemented,
		ControlUnderReview,
		ControlCertified:
		return true
	}
	return false
}

// Compliant reports whether the status counts towards the compliance percentage.
func (s ControlStatus) Compliant() bool {
	return s == ControlImplemented || s == ControlCertified
}

// Control: одна мера из каталога, привязанная к домену
type Control struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	Code        string        `gorm:"size:32;uniqueIndex;not null" json:"code"` // "D.G.I"
	Name        string        `gorm:"size:255;not null" json:"name"`
	Domain      string        `gorm:"size:8;index;not null" json:"domain"`
	Description string        `gorm:"type:text" json:"description"`
	Objective   string        `gorm:"type:text" json:"objective"`
	Status      ControlStatus `gorm:"type:varchar(32);index;not null" json:"status"`

	ImplementationDate *time.Time `json:"implementation_date,omitempty"`
	Responsible        *string    `gorm:"size:255" json:"responsible,omitempty"`
	Evidence           *string    `gorm:"type:text" json:"evidence,omitempty"`
	Notes              *string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ControlPatch carries a partial update; nil fields are left unchanged.
type ControlPatch struct {
	Status             *ControlStatus
	ImplementationDate *time.Time
	Responsible        *string
	Evidence           *string
	Notes              *string
}

func (p ControlPatch) Empty() bool {
	return p.Status == nil &&
		p.ImplementationDate == nil &&
		p.Responsible == nil &&
		p.Evidence == nil &&
		p.Notes == nil
}
