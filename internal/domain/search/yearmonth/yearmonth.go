// Package yearmonth parses loose human date strings into a sortable
// year*100+month integer encoding.
package yearmonth

import (
	"strconv"
	"strings"
)

// qualifiers are removed before parsing; they soften dates ("since 2020")
// but carry no range semantics of their own.
var qualifiers = []string{"about", "around", "since", "after", "before"}

// Encode packs a year and month into the comparable integer form.
func Encode(year, month int) int {
	return year*100 + month
}

// Parse extracts a year+month from a free-form date string. Accepted shapes
// after cleanup: "YYYY" (month defaults to 1), "YYYY-MM", "YYYY/MM",
// "MM/YYYY", "MM-YYYY", and "YYYY-MM-DD" (day ignored). ok is false for
// empty or unparseable input; callers treat that as "no date", never as an
// error.
func Parse(value string) (ym int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return 0, false
	}
	for _, q := range qualifiers {
		s = strings.ReplaceAll(s, q, "")
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '/' || r == '-' {
			b.WriteRune(r)
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == '/' || r == '-'
	})

	switch len(parts) {
	case 1:
		year, ok := atoiWidth(parts[0], 4)
		if !ok {
			return 0, false
		}
		return Encode(year, 1), true
	case 2:
		// YYYY-MM or MM/YYYY, decided by which side has four digits.
		if year, ok := atoiWidth(parts[0], 4); ok {
			return encodeChecked(year, parts[1])
		}
		if year, ok := atoiWidth(parts[1], 4); ok {
			return encodeChecked(year, parts[0])
		}
		return 0, false
	case 3:
		// YYYY-MM-DD only; the day is dropped.
		year, ok := atoiWidth(parts[0], 4)
		if !ok {
			return 0, false
		}
		return encodeChecked(year, parts[1])
	default:
		return 0, false
	}
}

func encodeChecked(year int, monthPart string) (int, bool) {
	if len(monthPart) == 0 || len(monthPart) > 2 {
		return 0, false
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return Encode(year, month), true
}

func atoiWidth(s string, width int) (int, bool) {
	if len(s) != width {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
