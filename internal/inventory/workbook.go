package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// workbook is a read-only multi-sheet source of raw cell text.
type workbook interface {
	Sheets() []string
	Rows(sheet string) (sheetData, error)
	Close() error
}

// sheetData is the cell text of one sheet. text marks the cells the source
// stores as strings; those are never inferred as numbers. A nil text grid
// means the source carries no cell types.
type sheetData struct {
	rows [][]string
	text [][]bool
}

func (d sheetData) isText(row, col int) bool {
	if row >= len(d.text) || col >= len(d.text[row]) {
		return false
	}
	return d.text[row][col]
}

// openWorkbook picks a reader by extension. Anything that is not CSV/TSV is
// handed to excelize, which rejects what it cannot read.
func openWorkbook(path string) (workbook, error) {
	if delim, ok := delimiterFor(path); ok {
		return &csvWorkbook{path: path, delim: delim}, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &xlsxWorkbook{f: f}, nil
}

type xlsxWorkbook struct {
	f *excelize.File
}

func (w *xlsxWorkbook) Sheets() []string { return w.f.GetSheetList() }

func (w *xlsxWorkbook) Rows(sheet string) (sheetData, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return sheetData{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	text := make([][]bool, len(rows))
	for i, r := range rows {
		text[i] = make([]bool, len(r))
		for j, v := range r {
			if v == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return sheetData{}, fmt.Errorf("read sheet %q: %w", sheet, err)
			}
			typ, err := w.f.GetCellType(sheet, ref)
			if err != nil {
				return sheetData{}, fmt.Errorf("cell type %s!%s: %w", sheet, ref, err)
			}
			text[i][j] = isTextCell(typ)
		}
	}
	return sheetData{rows: rows, text: text}, nil
}

// isTextCell reports whether the workbook stores the cell as a string:
// shared and inline strings, and formulas with a string result.
func isTextCell(typ excelize.CellType) bool {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	}
	return false
}

func (w *xlsxWorkbook) Close() error { return w.f.Close() }

// csvWorkbook exposes a delimited text file as a single sheet named after the
// file stem.
type csvWorkbook struct {
	path  string
	delim rune
}

func (w *csvWorkbook) Sheets() []string {
	base := filepath.Base(w.path)
	return []string{strings.TrimSuffix(base, filepath.Ext(base))}
}

func (w *csvWorkbook) Rows(_ string) (sheetData, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return sheetData{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = w.delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return sheetData{}, fmt.Errorf("read csv: %w", err)
		}
		if len(rows) == 0 && len(rec) > 0 {
			rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
		}
		rows = append(rows, rec)
	}
	return sheetData{rows: rows}, nil
}

func (w *csvWorkbook) Close() error { return nil }

func delimiterFor(path string) (rune, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ',', true
	case ".tsv":
		return '\t', true
	}
	return 0, false
}
