package version

import "strings"

// Compare compares two loosely formatted version strings.
// It returns a negative value when a < b, zero when the versions are equal
// or incomparable, and a positive value when a > b.
func Compare(a, b string) int {
	as := split(a)
	bs := split(b)

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av, aok := fragment(as, i)
		bv, bok := fragment(bs, i)

		// A fragment without numeric content has no defined order.
		if !aok || !bok {
			continue
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	return 0
}

// GreaterThan reports whether a is strictly greater than b.
func GreaterThan(a, b string) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a compares greater than or equal to b.
// Incomparable fragments count as equal, so malformed input satisfies this.
func GreaterOrEqual(a, b string) bool { return Compare(a, b) >= 0 }

func split(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return strings.Split(v, ".")
}

// fragment returns the numeric value of the i-th fragment. Fragments beyond
// the end of the version count as zero ("15" == "15.0"). A fragment with no
// leading digits reports ok=false and is skipped by the comparison.
func fragment(parts []string, i int) (int64, bool) {
	if i >= len(parts) {
		return 0, true
	}

	s := parts[i]
	var (
		val    int64
		digits int
	)
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		// Version fragments never approach int64 overflow in practice,
		// but cap the digit count to stay safe on adversarial input.
		if digits >= 18 {
			break
		}
		val = val*10 + int64(r-'0')
		digits++
	}

	if digits == 0 {
		return 0, false
	}
	return val, true
}
