package utils

import "strings"

// NormalizePhone strips everything except digits. Phone numbers are
// the login identifier, so "+998 (90) 123-45-67" and "998901234567"
// must collapse to the same key.
func NormalizePhone(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
