// Package fixture loads declarative parser test tables from TOML files
// and caches their expected results in a compact binary golden file, so
// a package's _test.go files can assert against a fixture instead of
// inlining dozens of literal cases.
//
// Grounded on internal/tqw/marshaledtypes.go's "struct tags describe a
// whole data file" idiom (toml), repointed at parser fixtures instead of
// game world data, and server/dao/sqlite/sessions.go's
// rezi.EncBinary/DecBinary round-trip, repointed at a golden-result
// cache instead of session persistence.
package fixture

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/rezi"
)

// Case is one declarative parser test case: Input is fed to the parser
// under test, WantOK selects whether parsing is expected to succeed,
// and WantConsumed/WantErrKind describe a minimal outcome shape common
// to every grammar in this module.
type Case struct {
	Name         string `toml:"name"`
	Input        string `toml:"input"`
	WantOK       bool   `toml:"want_ok"`
	WantConsumed int    `toml:"want_consumed"`
	WantErrKind  string `toml:"want_err_kind"`
}

// Table is the top-level shape of a fixture TOML file: a named group of
// Cases sharing one grammar.
type Table struct {
	Grammar string `toml:"grammar"`
	Cases   []Case `toml:"case"`
}

// Load reads and decodes a fixture TOML file at path.
func Load(path string) (Table, error) {
	var t Table
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Table{}, fmt.Errorf("fixture: decoding %s: %w", path, err)
	}
	return t, nil
}

// GoldenResult is one cached outcome a Table's Case produced the last
// time its golden file was regenerated, used to catch unintended
// behavior drift in the parser under test rather than re-deriving
// every expectation by hand.
type GoldenResult struct {
	Name     string
	OK       bool
	Consumed int
	ErrKind  string
}

// Golden is the rezi-encoded cache of an entire Table's results.
type Golden struct {
	Grammar string
	Results []GoldenResult
}

// SaveGolden rezi-encodes g and writes it to path.
func SaveGolden(path string, g Golden) error {
	data, err := rezi.EncBinary(g)
	if err != nil {
		return fmt.Errorf("fixture: encoding golden %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadGolden reads and rezi-decodes a golden cache previously written by
// SaveGolden.
func LoadGolden(path string) (Golden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Golden{}, fmt.Errorf("fixture: reading golden %s: %w", path, err)
	}
	var g Golden
	if _, err := rezi.DecBinary(data, &g); err != nil {
		return Golden{}, fmt.Errorf("fixture: decoding golden %s: %w", path, err)
	}
	return g, nil
}

// Diff compares a Table's live results against a Golden cache, in Case
// order, returning a human-readable mismatch description per case that
// changed. An empty slice means the live run reproduced the golden
// cache exactly.
func Diff(t Table, g Golden) []string {
	var mismatches []string

	byName := make(map[string]GoldenResult, len(g.Results))
	for _, r := range g.Results {
		byName[r.Name] = r
	}

	for _, c := range t.Cases {
		want, ok := byName[c.Name]
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("%s: no golden entry recorded", c.Name))
			continue
		}
		if want.OK != c.WantOK {
			mismatches = append(mismatches, fmt.Sprintf("%s: golden OK=%v, fixture WantOK=%v", c.Name, want.OK, c.WantOK))
		}
		if want.Consumed != c.WantConsumed {
			mismatches = append(mismatches, fmt.Sprintf("%s: golden Consumed=%d, fixture WantConsumed=%d", c.Name, want.Consumed, c.WantConsumed))
		}
		if want.ErrKind != c.WantErrKind {
			mismatches = append(mismatches, fmt.Sprintf("%s: golden ErrKind=%q, fixture WantErrKind=%q", c.Name, want.ErrKind, c.WantErrKind))
		}
	}

	return mismatches
}
