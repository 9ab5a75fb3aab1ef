package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadRange is returned when a range string is not "lower:upper".
var ErrBadRange = errors.New("range must be lower:upper")

// FormatCount formats a frame count compactly: 950, 8192, 12.3k, 4.1M.
func FormatCount(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	var s string
	switch {
	case n < 10_000:
		s = strconv.FormatInt(n, 10)
	case n < 1_000_000:
		s = fmt.Sprintf("%.1fk", float64(n)/1e3)
	default:
		s = fmt.Sprintf("%.1fM", float64(n)/1e6)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatSample formats a sample value with a sign and three decimals.
func FormatSample(v float64) string {
	return fmt.Sprintf("%+.3f", v)
}

// ParseRange parses "lower:upper" (or "lower-upper") into two frame indices.
// Negative values are allowed; callers clamp them. In the dash form the
// separator is the first "-" after the lower bound's own sign.
func ParseRange(s string) (lower, upper int64, err error) {
	s = strings.TrimSpace(s)
	lo, hi, ok := strings.Cut(s, ":")
	if !ok && len(s) > 1 {
		if i := strings.IndexByte(s[1:], '-'); i >= 0 {
			lo, hi, ok = s[:i+1], s[i+2:], true
		}
	}
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadRange)
	}
	lower, err = strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadRange)
	}
	upper, err = strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadRange)
	}
	return lower, upper, nil
}
