package script

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

var (
	// ErrInvalidDefinition is returned by NewTable when a definition is malformed.
	ErrInvalidDefinition = errors.New("invalid script definition")

	// ErrUnknownScript is returned when a lookup names a script the table does not hold.
	ErrUnknownScript = errors.New("unknown script")
)

// Range is a half-open span of code points: Start is included, End is not.
type Range struct {
	Start rune
	End   rune
}

// Contains reports whether r falls inside the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Start && r < rg.End
}

// Len returns the number of code points covered by the range.
func (rg Range) Len() int {
	if rg.End <= rg.Start {
		return 0
	}
	return int(rg.End - rg.Start)
}

// Definition describes one writing system: its name, ISO 15924 code,
// the code point ranges it owns and its reading direction.
type Definition struct {
	Name      string
	Code      language.Script
	Ranges    []Range
	Direction Direction
}

// Contains reports whether r falls in any of the definition's ranges.
func (d *Definition) Contains(r rune) bool {
	for _, rg := range d.Ranges {
		if rg.Contains(r) {
			return true
		}
	}
	return false
}

// RangeTable returns the definition's ranges as a *unicode.RangeTable, so
// that it can be used with unicode.Is and friends.
func (d *Definition) RangeTable() *unicode.RangeTable {
	var runes []rune
	for _, rg := range d.Ranges {
		for r := rg.Start; r < rg.End; r++ {
			runes = append(runes, r)
		}
	}
	return rangetable.New(runes...)
}

func (d Definition) clone() Definition {
	c := d
	c.Ranges = make([]Range, len(d.Ranges))
	copy(c.Ranges, d.Ranges)
	return c
}

func (d Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if len(d.Ranges) == 0 {
		return fmt.Errorf("%w: %s has no ranges", ErrInvalidDefinition, d.Name)
	}
	for _, rg := range d.Ranges {
		if rg.Start < 0 || rg.End <= rg.Start || rg.End > unicode.MaxRune+1 {
			return fmt.Errorf("%w: %s has bad range [%d,%d)", ErrInvalidDefinition, d.Name, rg.Start, rg.End)
		}
	}
	return nil
}

// Table is an ordered, read-only collection of script definitions.
// Declaration order decides precedence when ranges overlap.
// A Table is safe for concurrent use.
type Table struct {
	defs   []Definition
	byName map[string]int
}

// NewTable builds a Table from defs in the given order. The definitions are
// copied, so later changes to defs do not affect the table.
func NewTable(defs ...Definition) (*Table, error) {
	t := &Table{
		defs:   make([]Definition, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrInvalidDefinition, d.Name)
		}
		t.byName[d.Name] = len(t.defs)
		t.defs = append(t.defs, d.clone())
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
// It is intended for package-level table declarations.
func MustNewTable(defs ...Definition) *Table {
	t, err := NewTable(defs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default is the built-in table of sample scripts.
var Default = MustNewTable(
	Definition{
		Name:      "Latin",
		Code:      language.MustParseScript("Latn"),
		Ranges:    []Range{{65, 91}, {97, 123}},
		Direction: LTR,
	},
	Definition{
		Name:      "Arabic",
		Code:      language.MustParseScript("Arab"),
		Ranges:    []Range{{1536, 1792}},
		Direction: RTL,
	},
	Definition{
		Name:      "Cyrillic",
		Code:      language.MustParseScript("Cyrl"),
		Ranges:    []Range{{1024, 1279}},
		Direction: LTR,
	},
	Definition{
		Name:      "Hiragana",
		Code:      language.MustParseScript("Hira"),
		Ranges:    []Range{{12352, 12448}},
		Direction: TTB,
	},
)

// Len returns the number of definitions in the table.
func (t *Table) Len() int {
	return len(t.defs)
}

// Definitions returns a copy of the table's definitions in declaration order.
func (t *Table) Definitions() []Definition {
	out := make([]Definition, len(t.defs))
	for i, d := range t.defs {
		out[i] = d.clone()
	}
	return out
}

// Lookup returns the definition with the given name.
func (t *Table) Lookup(name string) (*Definition, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScript, name)
	}
	return &t.defs[i], nil
}

// LookupCode returns the first definition whose ISO 15924 code matches code,
// for example "Latn" or "arab".
func (t *Table) LookupCode(code string) (*Definition, error) {
	sc, err := language.ParseScript(code)
	if err != nil {
		return nil, fmt.Errorf("parsing script code %q: %w", code, err)
	}
	for i := range t.defs {
		if t.defs[i].Code == sc {
			return &t.defs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScript, sc)
}
