package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects what happens when a domain has fewer explicit entries than controls.
type Mode string

const (
	// ModeSynthetic fills gaps with placeholder texts built from the domain name.
	ModeSynthetic Mode = "synthetic"
	// ModeStrict treats any gap as a configuration error.
	ModeStrict Mode = "strict"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSynthetic:
		return ModeSynthetic, nil
	case ModeStrict:
		return ModeStrict, nil
	}
	return "", fmt.Errorf("unknown catalog mode %q", s)
}

// groupSize is how many items share one group number in a generated code.
const groupSize = 4

// Definition is one catalog entry before it becomes a stored control.
type Definition struct {
	Domain      string
	Code        string
	Name        string
	Objective   string
	Description string
	Synthetic   bool
}

// Code builds the "D.G.I" code of the i-th (1-indexed) control of a domain.
func Code(domainID string, i int) string {
	group := (i + groupSize - 1) / groupSize
	item := (i-1)%groupSize + 1
	return fmt.Sprintf("%s.%d.%d", domainID, group, item)
}

// Generate emits ControlCount definitions per domain, in taxonomy order and
// ascending item index. Same inputs always give the same sequence.
func Generate(tax Taxonomy, entries Entries, mode Mode) ([]Definition, error) {
	for id, list := range entries {
		d, ok := tax.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("catalog entries for unknown domain %s", id)
		}
		if len(list) > d.ControlCount {
			return nil, fmt.Errorf("domain %s has %d entries, only %d controls declared", id, len(list), d.ControlCount)
		}
	}

	defs := make([]Definition, 0, tax.Total())
	for _, d := range tax {
		explicit := entries[d.ID]
		for i := 1; i <= d.ControlCount; i++ {
			def := Definition{
				Domain: d.ID,
				Code:   Code(d.ID, i),
			}
			if i <= len(explicit) {
				e := explicit[i-1]
				def.Name = e.Name
				def.Objective = e.Objective
				def.Description = e.Description
				if def.Objective == "" {
					def.Objective = syntheticObjective(d, i)
				}
			} else {
				if mode == ModeStrict {
					return nil, fmt.Errorf("domain %s (%s): no explicit entry for control %d", d.ID, d.Name, i)
				}
				def.Name = syntheticName(d, i)
				def.Objective = syntheticObjective(d, i)
				def.Synthetic = true
			}
			defs = append(defs, def)
		}
	}
	return defs, nil
}

func syntheticName(d Domain, i int) string {
	return fmt.Sprintf("%s control %d", d.Name, i)
}

func syntheticObjective(d Domain, i int) string {
	return fmt.Sprintf("Ensure %s requirement %d is met.", strings.ToLower(d.Name), i)
}

// ValidateCodes returns an error listing every code that appears more than once.
func ValidateCodes(defs []Definition) error {
	seen := make(map[string]int, len(defs))
	for _, d := range defs {
		seen[d.Code]++
	}
	var dups []string
	for code, n := range seen {
		if n > 1 {
			dups = append(dups, fmt.Sprintf("%s (x%d)", code, n))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	sort.Strings(dups)
	return fmt.Errorf("duplicate control codes: %s", strings.Join(dups, ", "))
}
