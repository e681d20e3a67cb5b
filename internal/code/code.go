// Package code parses and formats dotted account codes like "1.2.01.04".
package code

import (
	"fmt"
	"strconv"
	"strings"
)

// Valid reports whether s is a well-formed account code: one or more
// dot-separated runs of ASCII digits, no leading/trailing/double dots.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// Level returns the hierarchy depth of a code: segment count minus one.
// "1" -> 0, "1.2.01" -> 2.
func Level(s string) int {
	return strings.Count(s, ".")
}

// Suffix returns the numeric value of the last segment.
// "1.2.04" -> 4. Leading zeros are not significant.
func Suffix(s string) (int, error) {
	segs := strings.Split(s, ".")
	n, err := strconv.Atoi(segs[len(segs)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid code segment in %q: %w", s, err)
	}
	return n, nil
}

// Child appends a numeric suffix to a parent code, zero-padded to two
// digits. Suffixes past 99 keep their natural width, so the 100th child
// of "1.2" is "1.2.100" and cannot collide with "1.2.01".
func Child(parent string, suffix int) string {
	return fmt.Sprintf("%s.%02d", parent, suffix)
}

// IsDirectChild reports whether child sits exactly one level below
// parent in the code hierarchy.
func IsDirectChild(child, parent string) bool {
	return strings.HasPrefix(child, parent+".") && Level(child) == Level(parent)+1
}

// Compare orders two codes segment-wise by numeric value, so "1.9"
// sorts before "1.10". Non-numeric segments fall back to string order.
func Compare(a, b string) int {
	sa, sb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(sa) && i < len(sb); i++ {
		na, errA := strconv.Atoi(sa[i])
		nb, errB := strconv.Atoi(sb[i])
		switch {
		case errA == nil && errB == nil:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
		default:
			if sa[i] != sb[i] {
				return strings.Compare(sa[i], sb[i])
			}
		}
	}
	return len(sa) - len(sb)
}
