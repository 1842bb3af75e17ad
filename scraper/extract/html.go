package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// First returns the first descendant of s matching css
func First(s *goquery.Selection, css string) (*goquery.Selection, error) {
	found := s.Find(css).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: element %q", ErrMissing, css)
	}
	return found, nil
}

// Nth returns the i-th descendant of s matching css
func Nth(s *goquery.Selection, css string, i int) (*goquery.Selection, error) {
	all := s.Find(css)
	if i >= all.Length() {
		return nil, fmt.Errorf("%w: element %q[%d] (found %d)", ErrMissing, css, i, all.Length())
	}
	return all.Eq(i), nil
}

// Attr reads attribute name from the first element of s
func Attr(s *goquery.Selection, name string) (string, error) {
	if s == nil || s.Length() == 0 {
		return "", fmt.Errorf("%w: attribute %q on empty selection", ErrMissing, name)
	}
	v, ok := s.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: attribute %q", ErrMissing, name)
	}
	return v, nil
}

// AttrOf reads attribute name from the first descendant matching css
func AttrOf(s *goquery.Selection, css, name string) (string, error) {
	el, err := First(s, css)
	if err != nil {
		return "", err
	}
	return Attr(el, name)
}

// Text returns the trimmed text of the first descendant matching css, with
// non-breaking spaces folded into plain spaces
func Text(s *goquery.Selection, css string) (string, error) {
	el, err := First(s, css)
	if err != nil {
		return "", err
	}
	return CleanText(el.Text()), nil
}

// CleanText trims and folds non-breaking spaces
func CleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}
