package store

import (
	"context"

	"ib-compliance/internal/models"

	"gorm.io/gorm"
)

type ControlFilter struct {
	Domain string
	Status models.ControlStatus
}

// StatusCount is one row of the domain × status histogram.
type StatusCount struct {
	Domain string
	Status models.ControlStatus
	Count  int64
}

type Controls struct {
	db *gorm.DB
}

func NewControls(db *gorm.DB) *Controls {
	return &Controls{db: db}
}

func (s *Controls) CountControls(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Control{}).Count(&count).Error
	return count, wrap("count controls", err)
}

func (s *Controls) CreateControl(ctx context.Context, c *models.Control) error {
	return wrap("create control "+c.Code, s.db.WithContext(ctx).Create(c).Error)
}

// ListControls returns controls ordered by domain and code as stored strings;
// callers that need taxonomy order re-sort.
func (s *Controls) ListControls(ctx context.Context, f ControlFilter) ([]models.Control, error) {
	q := s.db.WithContext(ctx).Order("domain asc, code asc")
	if f.Domain != "" {
		q = q.Where("domain = ?", f.Domain)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var controls []models.Control
	if err := q.Find(&controls).Error; err != nil {
		return nil, wrap("list controls", err)
	}
	return controls, nil
}

func (s *Controls) GetControl(ctx context.Context, id string) (models.Control, error) {
	var c models.Control
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, wrap("get control "+id, err)
}

// UpdateControl applies only the fields set in the patch.
func (s *Controls) UpdateControl(ctx context.Context, id string, p models.ControlPatch) (models.Control, error) {
	var out models.Control
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}

		fields := map[string]interface{}{}
		if p.Status != nil {
			fields["status"] = *p.Status
		}
		if p.ImplementationDate != nil {
			fields["implementation_date"] = *p.ImplementationDate
		}
		if p.Responsible != nil {
			fields["responsible"] = *p.Responsible
		}
		if p.Evidence != nil {
			fields["evidence"] = *p.Evidence
		}
		if p.Notes != nil {
			fields["notes"] = *p.Notes
		}

		if err := tx.Model(&out).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&out).Error
	})
	return out, wrap("update control "+id, err)
}

func (s *Controls) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := s.db.WithContext(ctx).
		Model(&models.Control{}).
		Select("domain, status, count(*) as count").
		Group("domain, status").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("count statuses", err)
	}
	return rows, nil
}
