package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ormcheatsheet/services/catalog"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// printCatalog writes the catalog grouped by category.
func printCatalog(w io.Writer, defs []catalog.Definition) error {
	tw := newTabWriter(w)
	for _, category := range catalog.Categories() {
		fmt.Fprintf(tw, "%s\n", strings.ToUpper(string(category)))
		for _, d := range defs {
			if d.Category == category {
				fmt.Fprintf(tw, "  %s\t%s\n", d.Shape, d.Title)
			}
		}
	}
	return tw.Flush()
}

// printRecords writes rows as an aligned text table. NULL prints as NULL.
func printRecords(w io.Writer, columns []string, records []catalog.Record) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	cells := make([]string, len(columns))
	for _, r := range records {
		for i, col := range columns {
			cells[i] = formatValue(r[col])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
