package periodic

import (
	"fmt"
	"strings"
)

// Mode selects which publication of the standard atomic weights to read.
type Mode uint8

const (
	// Unabridged is the full-precision table. Elements with natural variation
	// are given as intervals.
	Unabridged Mode = iota

	// Abridged is the table rounded to at most five significant digits, with
	// every entry given as value ± uncertainty.
	Abridged
)

// ParseMode accepts "abridged" or "unabridged", case-insensitively.
// An empty string selects Unabridged.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unabridged":
		return Unabridged, nil
	case "abridged":
		return Abridged, nil
	default:
		return 0, fmt.Errorf("invalid mode %q", s)
	}
}

func (m Mode) String() string {
	switch m {
	case Unabridged:
		return "unabridged"
	case Abridged:
		return "abridged"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
