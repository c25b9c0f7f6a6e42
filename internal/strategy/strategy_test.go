package strategy

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstShortCircuits(t *testing.T) {
	calls := make([]string, 0, 3)
	miss := func(text string) (string, bool) {
		calls = append(calls, "miss")
		return "", false
	}
	hit := func(text string) (string, bool) {
		calls = append(calls, "hit")
		return "ok", true
	}
	never := func(text string) (string, bool) {
		calls = append(calls, "never")
		return "later", true
	}

	got, ok := First("anything", miss, hit, never)
	require.True(t, ok)
	assert.Equal(t, "ok", got)
	assert.Equal(t, []string{"miss", "hit"}, calls) // third never runs
}

func TestFirstAllMiss(t *testing.T) {
	miss := func(text string) (int, bool) { return 0, false }
	got, ok := First("x", miss, miss)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestRegex(t *testing.T) {
	s := Regex(regexp.MustCompile(`ACCOUNT (\d+)`), func(m []string) (string, bool) {
		return m[1], true
	})

	got, ok := s("ACCOUNT 3101")
	require.True(t, ok)
	assert.Equal(t, "3101", got)

	_, ok = s("no account here")
	assert.False(t, ok)
}

func TestRegexTransformCanDecline(t *testing.T) {
	s := Regex(regexp.MustCompile(`UNIT (\d+)`), func(m []string) (string, bool) {
		if m[1] == "0000" {
			return "", false
		}
		return m[1], true
	})
	_, ok := s("UNIT 0000")
	assert.False(t, ok)
}

func TestBoundedWithinSpan(t *testing.T) {
	s := Bounded(
		regexp.MustCompile(`REFERENCE`),
		20,
		regexp.MustCompile(`\d{4}`),
		func(m []string) (string, bool) { return m[0], true },
	)
	got, ok := s("REFERENCE no 4482 trailing")
	require.True(t, ok)
	assert.Equal(t, "4482", got)
}

func TestBoundedTargetOutsideSpan(t *testing.T) {
	s := Bounded(
		regexp.MustCompile(`REFERENCE`),
		10,
		regexp.MustCompile(`\d{4}`),
		func(m []string) (string, bool) { return m[0], true },
	)
	// the digits exist, but past the 10-char window after the anchor
	_, ok := s("REFERENCE xxxxxxxxxxxx 4482")
	assert.False(t, ok)
}

func TestBoundedNoAnchor(t *testing.T) {
	s := Bounded(
		regexp.MustCompile(`MISSING`),
		50,
		regexp.MustCompile(`\d+`),
		func(m []string) (string, bool) { return m[0], true },
	)
	_, ok := s("1234 but no anchor")
	assert.False(t, ok)
}

func TestLineScan(t *testing.T) {
	digits := regexp.MustCompile(`^\d+$`)
	s := LineScan(regexp.MustCompile(`^AMOUNT$`), 2, func(line string) (string, bool) {
		if digits.MatchString(line) {
			return line, true
		}
		return "", false
	})

	got, ok := s("AMOUNT\n\n42")
	require.True(t, ok)
	assert.Equal(t, "42", got)

	// window exhausted: value is three lines down
	_, ok = s("AMOUNT\n\n\n42")
	assert.False(t, ok)

	// anchor absent
	_, ok = s("42")
	assert.False(t, ok)
}
