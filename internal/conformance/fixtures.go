// Package conformance loads YAML-described canonicalization fixtures
// and runs them against a fresh Interner, turning the concrete scenarios
// in spec.md §8 into versioned test data instead of only hand-written
// Go cases — the same shape the teacher's internal/eval_harness package
// uses to load YAML benchmark specs.
package conformance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/ailang/internal/errors"
	"github.com/sunholo/ailang/internal/interner"
)

// ElementaryCase is one row of an elementary-type-name fixture: parsing
// Token should yield a type whose canonical String() rendering is
// WantString, and Token should round-trip through
// Interner.FromElementaryTypeName without error unless WantError is set.
type ElementaryCase struct {
	Name       string `yaml:"name"`
	Token      string `yaml:"token"`
	WantString string `yaml:"want_string"`
	WantError  string `yaml:"want_error"`
}

// EquivalenceCase asserts that two elementary-type-name tokens intern to
// the identical handle (canonicity law, spec.md §8 law 1).
type EquivalenceCase struct {
	Name   string `yaml:"name"`
	Tokens []string `yaml:"tokens"`
}

// Fixture is the top-level shape of a conformance YAML file.
type Fixture struct {
	Elementary  []ElementaryCase  `yaml:"elementary"`
	Equivalence []EquivalenceCase `yaml:"equivalence"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: read %s: %w", path, err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("conformance: parse %s: %w", path, err)
	}
	return &f, nil
}

// RunElementary executes every ElementaryCase against a fresh Interner
// and returns the first mismatch found, or nil if all cases pass.
func RunElementary(f *Fixture) error {
	in := interner.New()
	for _, c := range f.Elementary {
		t, err := in.FromElementaryTypeName(c.Token)
		if c.WantError != "" {
			if err == nil {
				return fmt.Errorf("case %q: expected error %q, got none", c.Name, c.WantError)
			}
			rep, ok := errors.AsReport(err)
			if !ok {
				return fmt.Errorf("case %q: error %v is not a *Report", c.Name, err)
			}
			if rep.Code != c.WantError {
				return fmt.Errorf("case %q: got error code %s, want %s", c.Name, rep.Code, c.WantError)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("case %q: unexpected error: %w", c.Name, err)
		}
		if t.String() != c.WantString {
			return fmt.Errorf("case %q: got %q, want %q", c.Name, t.String(), c.WantString)
		}
	}
	return nil
}

// RunEquivalence executes every EquivalenceCase against a fresh Interner
// and returns the first mismatch found, or nil if all cases pass.
func RunEquivalence(f *Fixture) error {
	in := interner.New()
	for _, c := range f.Equivalence {
		if len(c.Tokens) < 2 {
			continue
		}
		first, err := in.FromElementaryTypeName(c.Tokens[0])
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		for _, tok := range c.Tokens[1:] {
			other, err := in.FromElementaryTypeName(tok)
			if err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}
			if first != other {
				return fmt.Errorf("case %q: %q and %q interned to different handles", c.Name, c.Tokens[0], tok)
			}
		}
	}
	return nil
}
