package services

import "strings"

const (
	countryCode = "996"
	// phoneDigits is the country code plus the nine-digit subscriber number.
	phoneDigits = 12
	// PhoneMaxLen is the length of a complete "+996 (7XX) XXX-XXX" number.
	PhoneMaxLen = len("+996 (700) 123-456")
)

// NormalizePhone turns raw keystrokes into the "+996 (7XX) XXX-XXX" display form.
// Formatting is revealed progressively as digits arrive. The result is idempotent:
// NormalizePhone(NormalizePhone(x)) == NormalizePhone(x).
func NormalizePhone(raw string) string {
	v := PhoneDigits(raw)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "0") {
		v = countryCode + v[1:]
	}
	if !strings.HasPrefix(v, countryCode) {
		v = countryCode + v
	}
	if len(v) > phoneDigits {
		v = v[:phoneDigits]
	}

	var b strings.Builder
	b.WriteString("+" + countryCode)
	if len(v) > 3 {
		b.WriteString(" (" + v[3:min(len(v), 6)])
	}
	if len(v) > 6 {
		b.WriteString(") " + v[6:min(len(v), 9)])
	}
	if len(v) > 9 {
		b.WriteString("-" + v[9:])
	}
	return b.String()
}

// PhoneDigits keeps only the ASCII digits of s.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
