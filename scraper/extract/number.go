package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRegex = regexp.MustCompile(`\d[\d.,]*`)
	spaceRegex  = regexp.MustCompile(`\s+`)
)

// ParseDecimal parses the first number in s, accepting both "1.234,56" and
// "1,234.56" styles. A lone separator followed by exactly three digits is a
// thousands separator.
func ParseDecimal(s string) (float64, error) {
	m := numberRegex.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("%w: no number in %q", ErrMissing, s)
	}
	m = strings.TrimRight(m, ".,")

	lastDot := strings.LastIndex(m, ".")
	lastComma := strings.LastIndex(m, ",")

	var normalized string
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			normalized = strings.ReplaceAll(m, ".", "")
			normalized = strings.Replace(normalized, ",", ".", 1)
		} else {
			normalized = strings.ReplaceAll(m, ",", "")
		}
	case lastComma >= 0:
		normalized = singleSeparator(m, ",")
	case lastDot >= 0:
		normalized = singleSeparator(m, ".")
	default:
		normalized = m
	}

	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", m, err)
	}
	return f, nil
}

func singleSeparator(m, sep string) string {
	parts := strings.Split(m, sep)
	last := parts[len(parts)-1]
	if len(parts) > 2 || len(last) == 3 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, ".")
}

// ParseInt parses the first integer in s, dropping thousands separators
func ParseInt(s string) (int, error) {
	m := numberRegex.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("%w: no number in %q", ErrMissing, s)
	}
	m = strings.NewReplacer(".", "", ",", "").Replace(m)
	return strconv.Atoi(m)
}

// SplitMoney separates an amount from its currency label, e.g. "€ 1.234",
// "1234 EUR" or "US$99".
func SplitMoney(s string) (float64, string, error) {
	s = CleanText(s)
	amount, err := ParseDecimal(s)
	if err != nil {
		return 0, "", err
	}
	currency := strings.TrimSpace(spaceRegex.ReplaceAllString(numberRegex.ReplaceAllString(s, " "), " "))
	if currency == "" {
		return 0, "", fmt.Errorf("%w: no currency in %q", ErrMissing, s)
	}
	return amount, currency, nil
}
