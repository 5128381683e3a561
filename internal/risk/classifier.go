// Package risk maps impact × probability onto severity levels.
package risk

import (
	"fmt"

	"ib-compliance/internal/models"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank orders severities; higher is more severe.
func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i
		}
	}
	return -1
}

// Level is the derived, never persisted, classification of a risk.
type Level struct {
	Score    int          `json:"score"`
	Severity Severity     `json:"level"`
	Color    models.Color `json:"color"`
}

const (
	MinOrdinal = 1
	MaxOrdinal = 5
)

// Upper bounds (inclusive) of the score bands.
const (
	lowMax    = 4
	mediumMax = 9
	highMax   = 16
)

// Classify scores a risk. Inputs outside 1..5 are a caller bug.
func Classify(impact, probability int) (Level, error) {
	if impact < MinOrdinal || impact > MaxOrdinal {
		return Level{}, fmt.Errorf("%w: impact %d outside %d..%d", models.ErrInvalidArgument, impact, MinOrdinal, MaxOrdinal)
	}
	if probability < MinOrdinal || probability > MaxOrdinal {
		return Level{}, fmt.Errorf("%w: probability %d outside %d..%d", models.ErrInvalidArgument, probability, MinOrdinal, MaxOrdinal)
	}
	return forScore(impact * probability), nil
}

// MustClassify is Classify for already validated input; it panics otherwise.
func MustClassify(impact, probability int) Level {
	lvl, err := Classify(impact, probability)
	if err != nil {
		panic(err)
	}
	return lvl
}

func forScore(score int) Level {
	switch {
	case score <= lowMax:
		return Level{Score: score, Severity: SeverityLow, Color: models.ColorSuccess}
	case score <= mediumMax:
		return Level{Score: score, Severity: SeverityMedium, Color: models.ColorWarning}
	case score <= highMax:
		return Level{Score: score, Severity: SeverityHigh, Color: models.ColorDanger}
	default:
		return Level{Score: score, Severity: SeverityCritical, Color: models.ColorCritical}
	}
}

// Matrix returns the 5×5 grid indexed [impact-1][probability-1].
func Matrix() [MaxOrdinal][MaxOrdinal]Level {
	var m [MaxOrdinal][MaxOrdinal]Level
	for i := MinOrdinal; i <= MaxOrdinal; i++ {
		for p := MinOrdinal; p <= MaxOrdinal; p++ {
			m[i-1][p-1] = forScore(i * p)
		}
	}
	return m
}

// Summary counts risks per severity; every severity is present.
func Summary(risks []models.Risk) map[Severity]int {
	out := make(map[Severity]int, len(Severities))
	for _, s := range Severities {
		out[s] = 0
	}
	for _, r := range risks {
		lvl, err := Classify(r.Impact, r.Probability)
		if err != nil {
			// строки с битыми значениями в сводку не попадают
			continue
		}
		out[lvl.Severity]++
	}
	return out
}
