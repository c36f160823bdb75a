package semverbump

import (
	"math/big"
	"strings"
)

// counter locates the maximal run of decimal digits at the end of an identifier.
// For "ceti-alpha-4" prefix is "ceti-alpha-" and digits is "4"; for "alpha"
// digits is empty.
type counter struct {
	prefix string
	digits string
}

func splitCounter(id string) counter {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	return counter{prefix: id[:i], digits: id[i:]}
}

func (c counter) found() bool {
	return c.digits != ""
}

// hyphenated reports whether the counter is joined to its prefix by '-'.
func (c counter) hyphenated() bool {
	return strings.HasSuffix(c.prefix, "-")
}

// next returns the identifier with its counter incremented by one. Leading
// zeros are not kept, so "build007" becomes "build8".
func (c counter) next() string {
	n, _ := new(big.Int).SetString(c.digits, 10)
	return c.prefix + n.Add(n, big.NewInt(1)).String()
}

// incrementGroup applies the counter rule to the last identifier of a
// non-empty group and returns a new slice.
func incrementGroup(ids []string) []string {
	out := append([]string(nil), ids...)
	last := out[len(out)-1]

	if c := splitCounter(last); c.found() {
		out[len(out)-1] = c.next()
		return out
	}

	switch {
	case len(out) > 1:
		return append(out, "1")
	case strings.HasSuffix(last, "-"):
		out[0] = last + "1"
	case strings.Contains(last, "-"):
		out[0] = last + "-1"
	default:
		out = append(out, "1")
	}
	return out
}

// hyphenStyle reports whether a group joins its counter with '-', either
// explicitly ("ceti-alpha-5") or by being a single hyphen-chained identifier
// without one ("ceti-alpha").
func hyphenStyle(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	last := ids[len(ids)-1]
	if c := splitCounter(last); c.found() {
		return c.hyphenated()
	}
	return len(ids) == 1 && strings.Contains(last, "-")
}

// stem is the text of a group with its counter, and the separator joining it,
// removed. It is empty when nothing but the counter remains.
func stem(ids []string) string {
	last := ids[len(ids)-1]
	c := splitCounter(last)
	if !c.found() {
		return joinGroup(ids)
	}
	head := ids[:len(ids)-1]
	p := strings.TrimSuffix(c.prefix, "-")
	if p == "" {
		return joinGroup(head)
	}
	return joinGroup(append(append([]string(nil), head...), p))
}

// withFreshCounter starts a counter at 1 on a newly supplied group, using a
// hyphen when hyphen is set and a new dot identifier otherwise. A group whose
// last identifier already ends in digits is returned unchanged.
func withFreshCounter(ids []string, hyphen bool) []string {
	out := append([]string(nil), ids...)
	last := out[len(out)-1]
	if splitCounter(last).found() {
		return out
	}
	if !hyphen {
		return append(out, "1")
	}
	if strings.HasSuffix(last, "-") {
		out[len(out)-1] = last + "1"
	} else {
		out[len(out)-1] = last + "-1"
	}
	return out
}
