// Package store holds the gorm repositories for controls and risks.
package store

import (
	"errors"
	"fmt"

	"ib-compliance/internal/models"

	"gorm.io/gorm"
)

// wrap converts a gorm error into one of the models sentinels.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrInvalidArgument) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStoreUnavailable, err)
}
