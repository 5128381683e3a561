package compliance

import (
	"ib-compliance/internal/catalog"
	"ib-compliance/internal/models"
	"ib-compliance/internal/store"
)

// Compliance bar thresholds, in percent.
const (
	GoodThreshold    = 70
	WarningThreshold = 40
)

type OverallStats struct {
	Total          int          `json:"total"`
	Implemented    int          `json:"implemented"` // implemented + certified
	InProgress     int          `json:"in_progress"`
	NotImplemented int          `json:"not_implemented"`
	UnderReview    int          `json:"under_review"`
	Certified      int          `json:"certified"`
	Percentage     int          `json:"percentage"`
	Color          models.Color `json:"color"`
}

type DomainStats struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Total       int          `json:"total"`
	Implemented int          `json:"implemented"`
	Percentage  int          `json:"percentage"`
	Color       models.Color `json:"color"`
}

// Percentage is round-half-up of 100*part/total, or 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

func ComplianceColor(pct int) models.Color {
	switch {
	case pct >= GoodThreshold:
		return models.ColorSuccess
	case pct >= WarningThreshold:
		return models.ColorWarning
	default:
		return models.ColorDanger
	}
}

// aggregate folds the domain × status histogram into overall and per-domain
// stats. Every taxonomy domain appears in the result; rows for unknown domains
// only count towards the overall figures.
func aggregate(rows []store.StatusCount, tax catalog.Taxonomy) (OverallStats, []DomainStats) {
	var overall OverallStats

	domains := make([]DomainStats, len(tax))
	for i, d := range tax {
		domains[i] = DomainStats{ID: d.ID, Name: d.Name}
	}

	for _, r := range rows {
		n := int(r.Count)
		overall.Total += n
		switch r.Status {
		case models.ControlInProgress:
			overall.InProgress += n
		case models.ControlNotImplemented:
			overall.NotImplemented += n
		case models.ControlUnderReview:
			overall.UnderReview += n
		case models.ControlCertified:
			overall.Certified += n
		}
		if r.Status.Compliant() {
			overall.Implemented += n
		}

		pos := tax.Position(r.Domain)
		if pos < 0 {
			continue
		}
		domains[pos].Total += n
		if r.Status.Compliant() {
			domains[pos].Implemented += n
		}
	}

	overall.Percentage = Percentage(overall.Implemented, overall.Total)
	overall.Color = ComplianceColor(overall.Percentage)
	for i := range domains {
		domains[i].Percentage = Percentage(domains[i].Implemented, domains[i].Total)
		domains[i].Color = ComplianceColor(domains[i].Percentage)
	}
	return overall, domains
}
