package store

import (
	"context"
	"fmt"

	"ib-compliance/internal/models"

	"gorm.io/gorm"
)

type Risks struct {
	db *gorm.DB
}

func NewRisks(db *gorm.DB) *Risks {
	return &Risks{db: db}
}

func (s *Risks) Create(ctx context.Context, r *models.Risk) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return wrap("create risk", s.db.WithContext(ctx).Create(r).Error)
}

// List returns risks newest first, optionally filtered by status.
func (s *Risks) List(ctx context.Context, status models.RiskStatus) ([]models.Risk, error) {
	q := s.db.WithContext(ctx).Order("created_at desc, id asc")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var risks []models.Risk
	if err := q.Find(&risks).Error; err != nil {
		return nil, wrap("list risks", err)
	}
	return risks, nil
}

func (s *Risks) Get(ctx context.Context, id string) (models.Risk, error) {
	var r models.Risk
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, wrap("get risk "+id, err)
}

func (s *Risks) Update(ctx context.Context, id string, p models.RiskPatch) (models.Risk, error) {
	var out models.Risk
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			return err
		}

		// проверяем итоговую запись, а не только изменённые поля
		merged := out
		if p.Name != nil {
			merged.Name = *p.Name
		}
		if p.Threat != nil {
			merged.Threat = *p.Threat
		}
		if p.Vulnerability != nil {
			merged.Vulnerability = *p.Vulnerability
		}
		if p.Impact != nil {
			merged.Impact = *p.Impact
		}
		if p.Probability != nil {
			merged.Probability = *p.Probability
		}
		if p.Status != nil {
			merged.Status = *p.Status
		}
		if p.Treatment != nil {
			merged.Treatment = *p.Treatment
		}
		if p.Responsible != nil {
			merged.Responsible = *p.Responsible
		}
		if err := merged.Validate(); err != nil {
			return err
		}

		if err := tx.Save(&merged).Error; err != nil {
			return err
		}
		out = merged
		return nil
	})
	return out, wrap("update risk "+id, err)
}

func (s *Risks) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Risk{})
	if res.Error != nil {
		return wrap("delete risk "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete risk %s: %w", id, models.ErrNotFound)
	}
	return nil
}
