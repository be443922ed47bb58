package script

import (
	"fmt"
	"strings"
)

// Direction represents the reading direction of a writing system.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// TTB (Top-to-Bottom) for vertically set scripts such as Hiragana.
	TTB
)

// String returns the lowercase direction tag ("ltr", "rtl" or "ttb").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case TTB:
		return "ttb"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction tag back into a Direction.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "ttb":
		return TTB, nil
	}
	return LTR, fmt.Errorf("unknown direction %q", s)
}
