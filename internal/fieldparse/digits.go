package fieldparse

import "strings"

// StripLeadingZeros trims leading zeros from a numeric identifier but always
// keeps at least one digit ("0000" -> "0").
func StripLeadingZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}
