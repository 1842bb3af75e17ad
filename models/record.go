package models

// Record is one flat row ready for tabular export
type Record interface {
	Columns() []string
	Values() []any
}

// Records converts a typed slice into exportable rows
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
