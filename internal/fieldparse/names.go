package fieldparse

import "strings"

// PersonName is a free-text name split into its parts. Absent parts stay nil.
type PersonName struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// SplitName splits a single free-text name field. A comma means
// "Last, First" ordering; otherwise the first token is the first name and
// the remainder the last. A lone token is treated as a last name. Blank
// input yields an empty record; this never fails.
func SplitName(s string) PersonName {
	s = strings.TrimSpace(s)
	if s == "" {
		return PersonName{}
	}
	if i := strings.Index(s, ","); i >= 0 {
		last := strings.TrimSpace(s[:i])
		first := strings.TrimSpace(s[i+1:])
		var pn PersonName
		if last != "" {
			pn.LastName = &last
		}
		if first != "" {
			pn.FirstName = &first
		}
		return pn
	}
	parts := strings.Fields(s)
	if len(parts) == 1 {
		return PersonName{LastName: &parts[0]}
	}
	first := parts[0]
	last := strings.Join(parts[1:], " ")
	return PersonName{FirstName: &first, LastName: &last}
}
