package semverbump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCounter(t *testing.T) {
	tests := []struct {
		id         string
		wantPrefix string
		wantDigits string
	}{
		{"alpha4", "alpha", "4"},
		{"4", "", "4"},
		{"ceti-alpha-4", "ceti-alpha-", "4"},
		{"cetialpha", "cetialpha", ""},
		{"rc10", "rc", "10"},
		{"build007", "build", "007"},
		{"a1b2", "a1b", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c := splitCounter(tt.id)
			assert.Equal(t, tt.wantPrefix, c.prefix)
			assert.Equal(t, tt.wantDigits, c.digits)
		})
	}
}

func TestCounterNext(t *testing.T) {
	huge := strings.Repeat("9", 30)
	tests := []struct {
		id   string
		want string
	}{
		{"alpha4", "alpha5"},
		{"9", "10"},
		{"0", "1"},
		{"ceti-alpha-4", "ceti-alpha-5"},
		{"build007", "build8"},
		{"001", "2"},
		{"099", "100"},
		{"x" + huge, "x1" + strings.Repeat("0", 30)},
		{"18446744073709551615", "18446744073709551616"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCounter(tt.id).next())
		})
	}
}

func TestIncrementGroup(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"dot segment", []string{"alpha", "4"}, []string{"alpha", "5"}},
		{"bare suffix", []string{"cetialpha4"}, []string{"cetialpha5"}},
		{"hyphen joined", []string{"ceti-alpha-4"}, []string{"ceti-alpha-5"}},
		{"lone number", []string{"1"}, []string{"2"}},
		{"bare name", []string{"alpha"}, []string{"alpha", "1"}},
		{"hyphen chained name", []string{"ceti-alpha"}, []string{"ceti-alpha-1"}},
		{"trailing hyphen", []string{"alpha-"}, []string{"alpha-1"}},
		{"dotted name", []string{"alpha", "four"}, []string{"alpha", "four", "1"}},
		{"dotted hyphen chain", []string{"rc", "ceti-alpha"}, []string{"rc", "ceti-alpha", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.ids...)
			assert.Equal(t, tt.want, incrementGroup(in))
			assert.Equal(t, tt.ids, in, "input must not be modified")
		})
	}
}

func TestIncrementGroupIsMonotonic(t *testing.T) {
	groups := [][]string{
		{"alpha", "4"},
		{"cetialpha4"},
		{"ceti-alpha-4"},
		{"build", "007"},
		{"rc", "99"},
	}
	for _, g := range groups {
		next := incrementGroup(g)
		before := splitCounter(g[len(g)-1])
		after := splitCounter(next[len(next)-1])

		assert.Equal(t, g[:len(g)-1], next[:len(next)-1])
		assert.Equal(t, before.prefix, after.prefix)
		assert.Equal(t, before.next(), next[len(next)-1])
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		ids  []string
		want string
	}{
		{[]string{"alpha", "1"}, "alpha"},
		{[]string{"ceti-alpha-5"}, "ceti-alpha"},
		{[]string{"cetialpha4"}, "cetialpha"},
		{[]string{"1"}, ""},
		{[]string{"alpha"}, "alpha"},
		{[]string{"rc", "-4"}, "rc"},
		{[]string{"x", "ceti-alpha-2"}, "x.ceti-alpha"},
	}
	for _, tt := range tests {
		t.Run(joinGroup(tt.ids), func(t *testing.T) {
			assert.Equal(t, tt.want, stem(tt.ids))
		})
	}
}

func TestHyphenStyle(t *testing.T) {
	assert.True(t, hyphenStyle([]string{"ceti-alpha-5"}))
	assert.True(t, hyphenStyle([]string{"ceti-alpha"}))
	assert.False(t, hyphenStyle([]string{"alpha", "1"}))
	assert.False(t, hyphenStyle([]string{"cetialpha4"}))
	assert.False(t, hyphenStyle([]string{"rc", "ceti-alpha"}))
	assert.False(t, hyphenStyle(nil))
}

func TestWithFreshCounter(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		hyphen bool
		want   []string
	}{
		{"dot", []string{"beta"}, false, []string{"beta", "1"}},
		{"hyphen", []string{"beta"}, true, []string{"beta-1"}},
		{"hyphen after trailing hyphen", []string{"beta-"}, true, []string{"beta-1"}},
		{"numeric segment kept", []string{"rc", "3"}, true, []string{"rc", "3"}},
		{"bare digits kept", []string{"rc3"}, false, []string{"rc3"}},
		{"dotted name", []string{"rc", "x"}, false, []string{"rc", "x", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withFreshCounter(tt.ids, tt.hyphen))
		})
	}
}
