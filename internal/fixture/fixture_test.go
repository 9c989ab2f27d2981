package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
grammar = "regexgrammar"

[[case]]
name = "literal"
input = "abc"
want_ok = true
want_consumed = 3
want_err_kind = ""

[[case]]
name = "unterminated_class"
input = "[abc"
want_ok = false
want_consumed = 0
want_err_kind = "take_until"
`), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "regexgrammar", tbl.Grammar)
	require.Len(t, tbl.Cases, 2)
	assert.Equal(t, "literal", tbl.Cases[0].Name)
	assert.True(t, tbl.Cases[0].WantOK)
	assert.Equal(t, 3, tbl.Cases[0].WantConsumed)
	assert.False(t, tbl.Cases[1].WantOK)
	assert.Equal(t, "take_until", tbl.Cases[1].WantErrKind)
}

func TestGoldenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "golden.rezi")

	want := Golden{
		Grammar: "ruledsl",
		Results: []GoldenResult{
			{Name: "single_rule", OK: true, Consumed: 12},
			{Name: "missing_arrow", OK: false, ErrKind: "syntax"},
		},
	}

	require.NoError(t, SaveGolden(path, want))

	got, err := LoadGolden(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDiff(t *testing.T) {
	tbl := Table{
		Grammar: "regexgrammar",
		Cases: []Case{
			{Name: "literal", WantOK: true},
			{Name: "unterminated_class", WantOK: false, WantErrKind: "take_until"},
			{Name: "new_case", WantOK: true},
		},
	}
	golden := Golden{
		Results: []GoldenResult{
			{Name: "literal", OK: true},
			{Name: "unterminated_class", OK: false, ErrKind: "delimiter"},
		},
	}

	mismatches := Diff(tbl, golden)
	require.Len(t, mismatches, 2)
	assert.Contains(t, mismatches[0], "unterminated_class")
	assert.Contains(t, mismatches[1], "new_case")
}
