package utils

import (
	"strings"
)

// NormalizeCode uppercases and trims an airport or flight identifier.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidPNR reports whether s looks like a booking reference: six
// alphanumeric characters.
func IsValidPNR(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// JoinNonEmpty joins the non-empty parts with the separator. Used to
// assemble delay/update notification messages from whichever fields the
// caller supplied.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
