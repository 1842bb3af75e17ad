package services

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// PrintSummary renders the run overview and per-field coverage to w
func PrintSummary(w io.Writer, s *Summary) {
	overview := newTable(w)
	overview.AppendRows([]table.Row{
		{"Source", s.Source},
		{"Records", s.Records},
		{"With price", s.Priced},
	})
	if s.Priced > 0 {
		overview.AppendRows([]table.Row{
			{"Min price", fmt.Sprintf("%.2f", s.MinPrice)},
			{"Avg price", fmt.Sprintf("%.2f", s.AvgPrice)},
			{"Max price", fmt.Sprintf("%.2f", s.MaxPrice)},
		})
	}
	overview.Render()

	if len(s.Fields) == 0 || s.Records == 0 {
		return
	}

	fields := newTable(w)
	fields.AppendHeader(table.Row{"Field", "Missing", "Extracted"})
	for _, f := range s.Fields {
		fields.AppendRow(table.Row{f.Field, f.Missing, fmt.Sprintf("%.0f%%", f.Ratio*100)})
	}
	fields.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	fields.Render()
}
