// Package compliance seeds the control catalog and answers status and
// statistics queries over it.
package compliance

import (
	"context"

	"ib-compliance/internal/models"
	"ib-compliance/internal/store"
)

// ControlStore is the persistence the engine needs; *store.Controls implements it.
type ControlStore interface {
	CountControls(ctx context.Context) (int64, error)
	CreateControl(ctx context.Context, c *models.Control) error
	ListControls(ctx context.Context, f store.ControlFilter) ([]models.Control, error)
	GetControl(ctx context.Context, id string) (models.Control, error)
	UpdateControl(ctx context.Context, id string, p models.ControlPatch) (models.Control, error)
	StatusCounts(ctx context.Context) ([]store.StatusCount, error)
}

var _ ControlStore = (*store.Controls)(nil)
