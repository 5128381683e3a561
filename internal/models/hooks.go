package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (c *Control) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = ControlNotImplemented
	}
	return nil
}

func (r *Risk) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = RiskIdentified
	}
	return nil
}

// Validate checks the ordinal ranges and status of a risk before it is written.
func (r *Risk) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: risk name is empty", ErrInvalidArgument)
	}
	if r.Impact < 1 || r.Impact > 5 {
		return fmt.Errorf("%w: impact %d outside 1..5", ErrInvalidArgument, r.Impact)
	}
	if r.Probability < 1 || r.Probability > 5 {
		return fmt.Errorf("%w: probability %d outside 1..5", ErrInvalidArgument, r.Probability)
	}
	if r.Status != "" && !r.Status.Valid() {
		return fmt.Errorf("%w: unknown risk status %q", ErrInvalidArgument, r.Status)
	}
	return nil
}
