// Package strategy provides layout-agnostic combinators for ordered
// fallback field extraction. Document parsers compose these into
// first-success chains; only the parsers know header vocabulary and
// field positions.
package strategy

import (
	"regexp"
	"strings"
)

// A Strategy attempts to pull one typed value out of a block of text.
// The boolean reports whether the attempt produced a value.
type Strategy[T any] func(text string) (T, bool)

// First evaluates strategies in order and returns the first hit.
// It short-circuits: strategies after the first hit are never invoked.
func First[T any](text string, strategies ...Strategy[T]) (T, bool) {
	for _, s := range strategies {
		if v, ok := s(text); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Regex wraps a single pattern; transform receives the submatch slice.
// No match, or a transform that declines, is a miss.
func Regex[T any](re *regexp.Regexp, transform func(m []string) (T, bool)) Strategy[T] {
	return func(text string) (T, bool) {
		var zero T
		m := re.FindStringSubmatch(text)
		if m == nil {
			return zero, false
		}
		return transform(m)
	}
}

// Bounded locates anchor, then searches only span characters after the
// anchor's end for target. A target beyond the span is a miss even if it
// occurs later in the full text; this bounds false positives from
// unrelated sections and keeps scan cost fixed.
func Bounded[T any](anchor *regexp.Regexp, span int, target *regexp.Regexp, transform func(m []string) (T, bool)) Strategy[T] {
	return func(text string) (T, bool) {
		var zero T
		loc := anchor.FindStringIndex(text)
		if loc == nil {
			return zero, false
		}
		end := loc[1] + span
		if end > len(text) {
			end = len(text)
		}
		m := target.FindStringSubmatch(text[loc[1]:end])
		if m == nil {
			return zero, false
		}
		return transform(m)
	}
}

// LineScan locates the first line matching anchorLine, then applies
// perLine to up to window subsequent lines, returning the first hit.
// An exhausted window is a miss.
func LineScan[T any](anchorLine *regexp.Regexp, window int, perLine func(line string) (T, bool)) Strategy[T] {
	return func(text string) (T, bool) {
		var zero T
		lines := strings.Split(text, "\n")
		for i, ln := range lines {
			if !anchorLine.MatchString(ln) {
				continue
			}
			for j := i + 1; j <= i+window && j < len(lines); j++ {
				if v, ok := perLine(lines[j]); ok {
					return v, true
				}
			}
			return zero, false
		}
		return zero, false
	}
}
