package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{1, "9.1.1"},
		{4, "9.1.4"},
		{5, "9.2.1"},
		{8, "9.2.4"},
		{9, "9.3.1"},
		{14, "9.4.2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code("9", tt.i), "index %d", tt.i)
	}
}

func TestGenerate_ReferenceTaxonomy(t *testing.T) {
	entries, err := DefaultEntries()
	require.NoError(t, err)

	defs, err := Generate(ISO27001, entries, ModeSynthetic)
	require.NoError(t, err)
	assert.Len(t, defs, 114)
	assert.Equal(t, 114, ISO27001.Total())
	assert.Len(t, ISO27001, 14)

	perDomain := map[string]int{}
	for _, d := range defs {
		perDomain[d.Domain]++
		assert.NotEmpty(t, d.Name, d.Code)
		assert.NotEmpty(t, d.Objective, d.Code)
	}
	for _, d := range ISO27001 {
		assert.Equal(t, d.ControlCount, perDomain[d.ID], "domain %s", d.ID)
	}

	assert.Equal(t, "5.1.1", defs[0].Code)
	assert.Equal(t, "Policies for information security", defs[0].Name)
	assert.False(t, defs[0].Synthetic)
	assert.Equal(t, "18.2.4", defs[len(defs)-1].Code)
}

func TestGenerate_Ordering(t *testing.T) {
	defs, err := Generate(ISO27001, nil, ModeSynthetic)
	require.NoError(t, err)

	last := -1
	for _, d := range defs {
		pos := ISO27001.Position(d.Domain)
		require.GreaterOrEqual(t, pos, last, "domain %s out of order", d.Domain)
		last = pos
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	entries, err := DefaultEntries()
	require.NoError(t, err)

	first, err := Generate(ISO27001, entries, ModeSynthetic)
	require.NoError(t, err)
	second, err := Generate(ISO27001, entries, ModeSynthetic)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_SyntheticFallback(t *testing.T) {
	defs, err := Generate(ISO27001, Entries{}, ModeSynthetic)
	require.NoError(t, err)

	var accessControl []Definition
	for _, d := range defs {
		if d.Domain == "9" {
			accessControl = append(accessControl, d)
		}
	}
	require.Len(t, accessControl, 14)
	assert.True(t, accessControl[2].Synthetic)
	assert.Equal(t, "Access control control 3", accessControl[2].Name)
	assert.Equal(t, "Ensure access control requirement 3 is met.", accessControl[2].Objective)
}

func TestGenerate_StrictModeFailsOnGap(t *testing.T) {
	entries, err := DefaultEntries()
	require.NoError(t, err)

	_, err = Generate(ISO27001, entries, ModeStrict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain 9")
}

func TestGenerate_StrictModeCompleteTable(t *testing.T) {
	tax := Taxonomy{{ID: "10", Name: "Cryptography", ControlCount: 2}}
	entries := Entries{"10": {
		{Name: "Policy on the use of cryptographic controls", Objective: "policy"},
		{Name: "Key management"},
	}}

	defs, err := Generate(tax, entries, ModeStrict)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "10.1.2", defs[1].Code)
	assert.Equal(t, "Ensure cryptography requirement 2 is met.", defs[1].Objective)
}

func TestGenerate_RejectsBadEntries(t *testing.T) {
	t.Run("unknown domain", func(t *testing.T) {
		_, err := Generate(ISO27001, Entries{"42": {{Name: "x"}}}, ModeSynthetic)
		assert.Error(t, err)
	})
	t.Run("too many entries", func(t *testing.T) {
		_, err := Generate(ISO27001, Entries{"10": {{Name: "a"}, {Name: "b"}, {Name: "c"}}}, ModeSynthetic)
		assert.Error(t, err)
	})
}

func TestValidateCodes_ReferenceCatalogIsUnique(t *testing.T) {
	defs, err := Load("", ModeSynthetic)
	require.NoError(t, err)
	assert.NoError(t, ValidateCodes(defs))
}

func TestValidateCodes_ReportsDuplicates(t *testing.T) {
	defs := []Definition{
		{Code: "5.1.1"},
		{Code: "5.1.2"},
		{Code: "5.1.1"},
	}
	err := ValidateCodes(defs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5.1.1 (x2)")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSynthetic, m)

	m, err = ParseMode(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)

	_, err = ParseMode("lenient")
	assert.Error(t, err)
}
