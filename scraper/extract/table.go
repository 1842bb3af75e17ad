// Package extract applies declarative field tables to raw records. Every
// field is evaluated on its own: a failing extractor degrades that field to
// the missing-value marker and leaves the rest of the record intact.
package extract

import (
	"errors"
	"fmt"

	"travel-scraper/models"
	"travel-scraper/utils"
)

// ErrMissing is returned by extractors when the expected node, attribute or key is absent
var ErrMissing = errors.New("missing")

// Field is one named extractor of a table
type Field[In, Out any] struct {
	Name     string
	Required bool
	apply    func(In, *Out) error
}

// Bind declares a field: get produces the value, target points at the Opt
// of the output record that receives it. On failure the target is left as
// the missing-value marker.
func Bind[In, Out, T any](name string, required bool, get func(In) (T, error), target func(*Out) *models.Opt[T]) Field[In, Out] {
	return Field[In, Out]{
		Name:     name,
		Required: required,
		apply: func(in In, out *Out) error {
			v, err := get(in)
			if err != nil {
				return err
			}
			*target(out) = models.Some(v)
			return nil
		},
	}
}

func (f Field[In, Out]) run(in In, out *Out) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panicked: %v", r)
		}
	}()
	return f.apply(in, out)
}

// Table is a fixed list of fields producing one Out per input record
type Table[In, Out any] struct {
	Name   string
	Fields []Field[In, Out]
	// New builds the empty record before fields are applied. Optional.
	New func() Out
}

// Report lists the fields of one record that fell back to the missing-value marker
type Report struct {
	Missing []string
	Errors  map[string]error
}

// OK reports whether every field was extracted
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

func (r *Report) add(field string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]error)
	}
	r.Missing = append(r.Missing, field)
	r.Errors[field] = err
}

// FieldNames returns the field names in table order
func (t Table[In, Out]) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// Apply runs every field against in. It never fails as a whole.
func (t Table[In, Out]) Apply(in In, logger *utils.Logger) (Out, Report) {
	var out Out
	if t.New != nil {
		out = t.New()
	}

	var rep Report
	for _, f := range t.Fields {
		if err := f.run(in, &out); err != nil {
			rep.add(f.Name, err)
			if f.Required {
				logger.Warn("[%s] error filling %s: %v", t.Name, f.Name, err)
			} else {
				logger.Debug("[%s] error filling %s: %v", t.Name, f.Name, err)
			}
		}
	}
	return out, rep
}
