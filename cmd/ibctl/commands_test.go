package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogValidate(t *testing.T) {
	out, err := run(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 114 controls in 14 domains (87 synthetic)")
}

func TestCatalogValidate_Strict(t *testing.T) {
	_, err := run(t, "catalog", "validate", "--mode", "strict")
	assert.Error(t, err)
}

func TestCatalogValidate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domains:\n  - id: \"10\"\n    controls:\n      - name: a\n      - name: b\n      - name: c\n"), 0o644))

	_, err := run(t, "catalog", "validate", "--file", path)
	assert.Error(t, err, "more entries than declared controls")
}

func TestCatalogList(t *testing.T) {
	out, err := run(t, "catalog", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 115)
	assert.True(t, strings.HasPrefix(lines[1], "5.1.1"))
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "5", "5")
	require.NoError(t, err)
	assert.Equal(t, "score 25: critical (critical)\n", out)

	out, err = run(t, "classify", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "score 1: low (success)\n", out)

	_, err = run(t, "classify", "0", "3")
	assert.Error(t, err)

	_, err = run(t, "classify", "x", "3")
	assert.Error(t, err)
}
