// Package render writes inventory tables for people and for other programs.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat accepts a format name, case-insensitively. "md" and "yml" are
// aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unsupported format %q (use %s)", s, strings.Join(names, "|"))
}

// Write renders every row and column of t. Cells are written as display text,
// missing values as "".
func Write(w io.Writer, t *inventory.Table, f Format) error {
	switch f {
	case FormatTable, "":
		return writeTable(w, t)
	case FormatCSV:
		return writeCSV(w, t)
	case FormatJSON:
		return writeJSON(w, t)
	case FormatYAML:
		return writeYAML(w, t)
	case FormatMarkdown:
		return writeMarkdown(w, t)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

func rowsOf(t *inventory.Table) [][]string {
	rows := make([][]string, t.Len())
	for i := range rows {
		rows[i] = t.Strings(i)
	}
	return rows
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeTable(w io.Writer, t *inventory.Table) error {
	tb := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Columns()...).
		Rows(rowsOf(t)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, tb.String())
	return err
}

func writeCSV(w io.Writer, t *inventory.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rowsOf(t)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

type jsonResult struct {
	Columns []string            `json:"columns"`
	Count   int                 `json:"count"`
	Rows    []map[string]string `json:"rows"`
}

func writeJSON(w io.Writer, t *inventory.Table) error {
	cols := t.Columns()
	out := jsonResult{Columns: cols, Count: t.Len(), Rows: make([]map[string]string, 0, t.Len())}
	for _, r := range rowsOf(t) {
		m := make(map[string]string, len(cols))
		for j, c := range cols {
			m[c] = r[j]
		}
		out.Rows = append(out.Rows, m)
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// writeYAML emits a sequence of mappings whose keys keep column order. All
// scalars are tagged !!str so identifiers like 00417 round-trip as text.
func writeYAML(w io.Writer, t *inventory.Table) error {
	cols := t.Columns()
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range rowsOf(t) {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for j, c := range cols {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r[j]},
			)
		}
		doc.Content = append(doc.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeMarkdown(w io.Writer, t *inventory.Table) error {
	cols := t.Columns()
	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(escapeCells(cols), " | "))
	b.WriteString(" |\n|")
	for range cols {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, r := range rowsOf(t) {
		b.WriteString("| ")
		b.WriteString(strings.Join(escapeCells(r), " | "))
		b.WriteString(" |\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = strings.ReplaceAll(c, "|", `\|`)
		out[i] = strings.ReplaceAll(c, "\n", " ")
	}
	return out
}
