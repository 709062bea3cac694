package main

import (
	"fmt"
	"strings"

	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

// Formatter renders fetched rows in one of the supported output modes.
type Formatter struct {
	mode        string
	showHeaders bool
	nullValue   string
}

func NewFormatter() *Formatter {
	return &Formatter{
		mode:        "table",
		showHeaders: true,
	}
}

func (f *Formatter) SetMode(mode string) {
	f.mode = mode
}

func (f *Formatter) SetShowHeaders(show bool) {
	f.showHeaders = show
}

func (f *Formatter) SetNullValue(value string) {
	f.nullValue = value
}

func (f *Formatter) Format(description []gsqlite.ColumnDescription, rows []gsqlite.Row) string {
	if len(description) == 0 {
		return ""
	}
	cols := make([]string, len(description))
	for i, column := range description {
		cols[i] = column.Name
	}

	switch f.mode {
	case "csv":
		return f.formatCSV(cols, rows)
	case "json":
		return f.formatJSON(cols, rows)
	case "list":
		return f.formatList(cols, rows)
	default:
		return f.formatTable(cols, rows)
	}
}

func (f *Formatter) formatTable(cols []string, rows []gsqlite.Row) string {
	var sb strings.Builder
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}

	for _, row := range rows {
		for i, v := range row {
			if s := f.formatValue(v); len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	if f.showHeaders {
		sb.WriteString(strings.Repeat("-", sum(widths)+len(cols)*3+1) + "\n")
		header := "|"
		for i, c := range cols {
			header += fmt.Sprintf(" %-*s |", widths[i], c)
		}
		sb.WriteString(header + "\n")
		sb.WriteString(strings.Repeat("-", sum(widths)+len(cols)*3+1) + "\n")
	}

	for _, row := range rows {
		rowStr := "|"
		for i, v := range row {
			rowStr += fmt.Sprintf(" %-*s |", widths[i], f.formatValue(v))
		}
		sb.WriteString(rowStr + "\n")
	}

	return sb.String()
}

func (f *Formatter) formatCSV(cols []string, rows []gsqlite.Row) string {
	var sb strings.Builder
	if f.showHeaders {
		sb.WriteString(strings.Join(cols, ",") + "\n")
	}
	for _, row := range rows {
		vals := make([]string, len(row))
		for i, v := range row {
			vals[i] = f.formatValue(v)
		}
		sb.WriteString(strings.Join(vals, ",") + "\n")
	}
	return sb.String()
}

func (f *Formatter) formatJSON(cols []string, rows []gsqlite.Row) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, row := range rows {
		sb.WriteString("  {")
		pairs := make([]string, 0, len(cols))
		for j, col := range cols {
			pairs = append(pairs, fmt.Sprintf(`"%s": "%s"`, col, f.formatValue(row[j])))
		}
		sb.WriteString(strings.Join(pairs, ", "))
		sb.WriteString("}")
		if i < len(rows)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]\n")
	return sb.String()
}

func (f *Formatter) formatList(cols []string, rows []gsqlite.Row) string {
	var sb strings.Builder
	for _, row := range rows {
		for i, col := range cols {
			sb.WriteString(fmt.Sprintf("%s = %s\n", col, f.formatValue(row[i])))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (f *Formatter) formatValue(v any) string {
	if v == nil {
		if f.nullValue != "" {
			return f.nullValue
		}
		return "NULL"
	}
	if b, ok := v.([]byte); ok {
		return fmt.Sprintf("x'%x'", b)
	}
	return fmt.Sprintf("%v", v)
}

func sum(nums []int) int {
	s := 0
	for _, n := range nums {
		s += n
	}
	return s
}
