package engine

import (
	"fmt"
	"strings"
)

// Mode selects which ordered rule list Classify evaluates.
// Using a custom type prevents string typos in the business logic.
type Mode int

const (
	// ModeSmart is the default balanced rule set.
	ModeSmart Mode = iota
	// ModeAggressive evaluates everything Smart does, then extra checks.
	ModeAggressive
	// ModePermissive is a narrower, independent rule set.
	ModePermissive
)

func (m Mode) String() string {
	switch m {
	case ModeSmart:
		return "SMART"
	case ModeAggressive:
		return "AGGRESSIVE"
	case ModePermissive:
		return "PERMISSIVE"
	default:
		return "UNKNOWN"
	}
}

// ParseMode maps a user-supplied mode name to a Mode.
// Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMART", "":
		return ModeSmart, nil
	case "AGGRESSIVE":
		return ModeAggressive, nil
	case "PERMISSIVE":
		return ModePermissive, nil
	}
	return ModeSmart, fmt.Errorf("unknown analysis mode: %q", s)
}
