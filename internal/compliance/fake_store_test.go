package compliance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ib-compliance/internal/models"
	"ib-compliance/internal/store"
)

var errDown = errors.New("connection refused")

// fakeStore is an in-memory ControlStore with failure injection.
type fakeStore struct {
	mu       sync.Mutex
	controls []models.Control

	countErr   error
	listErr    error
	statsErr   error
	failCreate func(code string) bool
}

func (f *fakeStore) CountControls(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, fmt.Errorf("count: %w: %w", models.ErrStoreUnavailable, f.countErr)
	}
	return int64(len(f.controls)), nil
}

func (f *fakeStore) CreateControl(ctx context.Context, c *models.Control) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil && f.failCreate(c.Code) {
		return fmt.Errorf("create %s: %w: %w", c.Code, models.ErrStoreUnavailable, errDown)
	}
	f.controls = append(f.controls, *c)
	return nil
}

func (f *fakeStore) ListControls(ctx context.Context, flt store.ControlFilter) ([]models.Control, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, fmt.Errorf("list: %w: %w", models.ErrStoreUnavailable, f.listErr)
	}
	var out []models.Control
	// обратный порядок, чтобы проверять сортировку в движке
	for i := len(f.controls) - 1; i >= 0; i-- {
		c := f.controls[i]
		if flt.Domain != "" && c.Domain != flt.Domain {
			continue
		}
		if flt.Status != "" && c.Status != flt.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) GetControl(ctx context.Context, id string) (models.Control, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.controls {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Control{}, fmt.Errorf("get %s: %w", id, models.ErrNotFound)
}

func (f *fakeStore) UpdateControl(ctx context.Context, id string, p models.ControlPatch) (models.Control, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.controls {
		c := &f.controls[i]
		if c.ID != id {
			continue
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		if p.ImplementationDate != nil {
			d := *p.ImplementationDate
			c.ImplementationDate = &d
		}
		if p.Responsible != nil {
			v := *p.Responsible
			c.Responsible = &v
		}
		if p.Evidence != nil {
			v := *p.Evidence
			c.Evidence = &v
		}
		if p.Notes != nil {
			v := *p.Notes
			c.Notes = &v
		}
		return *c, nil
	}
	return models.Control{}, fmt.Errorf("update %s: %w", id, models.ErrNotFound)
}

func (f *fakeStore) StatusCounts(ctx context.Context) ([]store.StatusCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return nil, fmt.Errorf("stats: %w: %w", models.ErrStoreUnavailable, f.statsErr)
	}
	type key struct {
		domain string
		status models.ControlStatus
	}
	counts := map[key]int64{}
	var order []key
	for _, c := range f.controls {
		k := key{c.Domain, c.Status}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}
	rows := make([]store.StatusCount, 0, len(order))
	for _, k := range order {
		rows = append(rows, store.StatusCount{Domain: k.domain, Status: k.status, Count: counts[k]})
	}
	return rows, nil
}

// setStatus changes the status of the first n controls matching pred.
func (f *fakeStore) setStatus(n int, status models.ControlStatus, pred func(models.Control) bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.controls {
		if n == 0 {
			return
		}
		if pred == nil || pred(f.controls[i]) {
			f.controls[i].Status = status
			n--
		}
	}
}
