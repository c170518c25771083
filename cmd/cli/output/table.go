package output

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes rows to stdout as an aligned table.
func RenderTable(headers []string, rows [][]interface{}) {
	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	w.AppendHeader(header)

	for _, row := range rows {
		w.AppendRow(row)
	}
	w.Render()
}
