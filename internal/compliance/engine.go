package compliance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ib-compliance/internal/catalog"
	"ib-compliance/internal/metrics"
	"ib-compliance/internal/models"
	"ib-compliance/internal/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("ib-compliance/compliance")

// Engine is what the HTTP handlers and the CLI call. Read methods never
// return store errors: they log them and answer with empty results.
type Engine struct {
	store    ControlStore
	seeder   *Seeder
	taxonomy catalog.Taxonomy
	log      *zap.Logger
}

func NewEngine(s ControlStore, seeder *Seeder, tax catalog.Taxonomy, log *zap.Logger) *Engine {
	return &Engine{store: s, seeder: seeder, taxonomy: tax, log: log}
}

func (e *Engine) Domains() catalog.Taxonomy {
	return e.taxonomy
}

// Seed runs the catalog seeder; used at startup and by `ibctl seed`.
func (e *Engine) Seed(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "Engine.Seed")
	defer span.End()

	n, err := e.seeder.EnsureSeeded(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "seed failed")
		return n, err
	}
	span.SetAttributes(attribute.Int("inserted", n))
	return n, nil
}

// ListControls makes sure the catalog exists, then returns every control in
// taxonomy order.
func (e *Engine) ListControls(ctx context.Context) []models.Control {
	ctx, span := tracer.Start(ctx, "Engine.ListControls")
	defer span.End()

	if _, err := e.seeder.EnsureSeeded(ctx); err != nil {
		e.log.Error("failed to ensure catalog is seeded", zap.Error(err))
	}
	return e.list(ctx, "list_controls", store.ControlFilter{})
}

func (e *Engine) ListControlsByDomain(ctx context.Context, domainID string) []models.Control {
	ctx, span := tracer.Start(ctx, "Engine.ListControlsByDomain")
	defer span.End()
	span.SetAttributes(attribute.String("domain", domainID))

	return e.list(ctx, "list_controls_by_domain", store.ControlFilter{Domain: domainID})
}

func (e *Engine) ListControlsByStatus(ctx context.Context, status models.ControlStatus) []models.Control {
	ctx, span := tracer.Start(ctx, "Engine.ListControlsByStatus")
	defer span.End()
	span.SetAttributes(attribute.String("status", string(status)))

	if !status.Valid() {
		return []models.Control{}
	}
	return e.list(ctx, "list_controls_by_status", store.ControlFilter{Status: status})
}

func (e *Engine) list(ctx context.Context, op string, f store.ControlFilter) []models.Control {
	controls, err := e.store.ListControls(ctx, f)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(op).Inc()
		e.log.Error("failed to list controls", zap.String("operation", op), zap.Error(err))
		return []models.Control{}
	}
	e.sortControls(controls)
	return controls
}

// sortControls orders by taxonomy position, then by numeric code parts.
// Controls of unknown domains go last.
func (e *Engine) sortControls(controls []models.Control) {
	pos := func(id string) int {
		if p := e.taxonomy.Position(id); p >= 0 {
			return p
		}
		return len(e.taxonomy)
	}
	sort.SliceStable(controls, func(i, j int) bool {
		pi, pj := pos(controls[i].Domain), pos(controls[j].Domain)
		if pi != pj {
			return pi < pj
		}
		return compareCodes(controls[i].Code, controls[j].Code) < 0
	})
}

func compareCodes(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		na, errA := strconv.Atoi(pa[i])
		nb, errB := strconv.Atoi(pb[i])
		if errA != nil || errB != nil {
			if c := strings.Compare(pa[i], pb[i]); c != 0 {
				return c
			}
			continue
		}
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	return len(pa) - len(pb)
}

func (e *Engine) GetControl(ctx context.Context, id string) (models.Control, error) {
	ctx, span := tracer.Start(ctx, "Engine.GetControl")
	defer span.End()

	c, err := e.store.GetControl(ctx, id)
	if err != nil {
		span.RecordError(err)
		return models.Control{}, e.describe("get_control", err)
	}
	return c, nil
}

// UpdateControl merges the patch into the stored control.
func (e *Engine) UpdateControl(ctx context.Context, id string, p models.ControlPatch) (models.Control, error) {
	ctx, span := tracer.Start(ctx, "Engine.UpdateControl")
	defer span.End()
	span.SetAttributes(attribute.String("control.id", id))

	if p.Status != nil && !p.Status.Valid() {
		return models.Control{}, fmt.Errorf("%w: unknown control status %q", models.ErrInvalidArgument, *p.Status)
	}

	c, err := e.store.UpdateControl(ctx, id, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return models.Control{}, e.describe("update_control", err)
	}

	metrics.ControlUpdates.WithLabelValues(string(c.Status)).Inc()
	e.log.Info("control updated",
		zap.String("id", c.ID),
		zap.String("code", c.Code),
		zap.String("status", string(c.Status)),
	)
	return c, nil
}

// describe logs store failures and keeps the sentinel in the chain.
func (e *Engine) describe(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrStoreUnavailable) {
		metrics.StoreErrors.WithLabelValues(op).Inc()
		e.log.Error("store failure", zap.String("operation", op), zap.Error(err))
	}
	return err
}

func (e *Engine) stats(ctx context.Context) (OverallStats, []DomainStats) {
	rows, err := e.store.StatusCounts(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("status_counts").Inc()
		e.log.Error("failed to count control statuses", zap.Error(err))
		rows = nil
	}
	return aggregate(rows, e.taxonomy)
}

func (e *Engine) OverallStats(ctx context.Context) OverallStats {
	ctx, span := tracer.Start(ctx, "Engine.OverallStats")
	defer span.End()

	overall, _ := e.stats(ctx)
	metrics.CompliancePercentage.Set(float64(overall.Percentage))
	return overall
}

// DomainStats is keyed by domain id and always holds every taxonomy domain.
func (e *Engine) DomainStats(ctx context.Context) map[string]DomainStats {
	ordered := e.DomainStatsOrdered(ctx)
	out := make(map[string]DomainStats, len(ordered))
	for _, d := range ordered {
		out[d.ID] = d
	}
	return out
}

// DomainStatsOrdered is DomainStats as a slice in taxonomy order.
func (e *Engine) DomainStatsOrdered(ctx context.Context) []DomainStats {
	ctx, span := tracer.Start(ctx, "Engine.DomainStats")
	defer span.End()

	_, domains := e.stats(ctx)
	for _, d := range domains {
		metrics.DomainCompliancePercentage.WithLabelValues(d.ID).Set(float64(d.Percentage))
	}
	return domains
}
