package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/programme-lv/gradebook/internal/behave"
)

func renderResults(w io.Writer, results []behave.Result, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"File", "Scenario", "Result", "Detail"})
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		t.AppendRow(table.Row{r.File, r.Case.Name, status, r.Detail})
	}

	if !colored {
		t.SetStyle(table.StyleLight)
		t.Render()
		return
	}

	t.SetStyle(table.StyleColoredDark)
	statusColor := text.Transformer(func(s interface{}) string {
		switch s.(string) {
		case "PASS":
			return text.FgHiGreen.Sprint(s)
		case "FAIL":
			return text.FgHiRed.Sprint(s)
		}
		return ""
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{
			Name:        "Result",
			Transformer: statusColor,
			Align:       text.AlignCenter,
		},
	})
	t.Render()
}
