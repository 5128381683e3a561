package compliance

import (
	"context"
	"fmt"
	"sync"

	"ib-compliance/internal/catalog"
	"ib-compliance/internal/metrics"
	"ib-compliance/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator produces the catalog definitions to insert into an empty store.
type Generator func() ([]catalog.Definition, error)

// Seeder writes the catalog into the store once. Calls are serialized, so two
// callers in one process never both observe an empty table; across processes the
// unique index on controls.code rejects the second writer's rows.
type Seeder struct {
	store    ControlStore
	generate Generator
	log      *zap.Logger

	mu     sync.Mutex
	seeded bool
}

func NewSeeder(s ControlStore, generate Generator, log *zap.Logger) *Seeder {
	return &Seeder{store: s, generate: generate, log: log}
}

// EnsureSeeded inserts the full catalog if and only if the controls table is
// empty. A non-empty table is left alone even if its size is unexpected.
// Failed inserts are logged and skipped; the returned count is the number of
// rows written by this call.
func (s *Seeder) EnsureSeeded(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		return 0, nil
	}

	count, err := s.store.CountControls(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("count_controls").Inc()
		return 0, err
	}
	if count > 0 {
		s.seeded = true
		return 0, nil
	}

	defs, err := s.generate()
	if err != nil {
		return 0, fmt.Errorf("generate catalog: %w", err)
	}

	inserted, failed := 0, 0
	for _, d := range defs {
		c := models.Control{
			ID:          uuid.NewString(),
			Code:        d.Code,
			Name:        d.Name,
			Domain:      d.Domain,
			Description: d.Description,
			Objective:   d.Objective,
			Status:      models.ControlNotImplemented,
		}
		if err := s.store.CreateControl(ctx, &c); err != nil {
			failed++
			metrics.SeedFailures.Inc()
			s.log.Error("failed to seed control", zap.String("code", d.Code), zap.Error(err))
			continue
		}
		inserted++
	}
	metrics.SeededControls.Add(float64(inserted))

	if failed == 0 {
		s.seeded = true
	}
	s.log.Info("catalog seeded",
		zap.Int("inserted", inserted),
		zap.Int("failed", failed),
		zap.Int("expected", len(defs)),
	)
	return inserted, nil
}
