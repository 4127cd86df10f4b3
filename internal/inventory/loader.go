package inventory

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Loaded is the outcome of Load. Sheets is filled in as soon as the workbook
// is opened, so it is also available alongside InvalidSheetError and most
// LoadErrors.
type Loaded struct {
	Table   *Table
	Columns []string
	Sheets  []string
	// Sheet is the resolved sheet name.
	Sheet string
}

// Load reads one sheet of the workbook at path into a Table. The header row
// supplies column names; force-text columns of schema keep their cell text
// verbatim with missing values as "". The source file is only read.
func Load(path string, sheet Sheet, schema Schema) (Loaded, error) {
	var out Loaded
	if err := checkSource(path); err != nil {
		return out, err
	}
	base := filepath.Base(path)

	wb, err := openWorkbook(path)
	if err != nil {
		return out, &LoadError{File: base, Err: err}
	}
	defer wb.Close()

	out.Sheets = wb.Sheets()
	name, err := sheet.resolve(out.Sheets)
	if err != nil {
		return out, err
	}
	data, err := wb.Rows(name)
	if err != nil {
		return out, &LoadError{File: base, Err: err}
	}
	t, err := buildTable(name, data, schema)
	if err != nil {
		return out, &LoadError{File: base, Err: err}
	}
	out.Table = t
	out.Columns = t.Columns()
	out.Sheet = name
	return out, nil
}

// SheetNames lists the sheets of the workbook at path without loading data.
func SheetNames(path string) ([]string, error) {
	if err := checkSource(path); err != nil {
		return nil, err
	}
	wb, err := openWorkbook(path)
	if err != nil {
		return nil, &LoadError{File: filepath.Base(path), Err: err}
	}
	defer wb.Close()
	return wb.Sheets(), nil
}

// checkSource fails with *NotFoundError unless path names an existing file.
func checkSource(path string) error {
	if strings.TrimSpace(path) == "" {
		return &NotFoundError{Path: path}
	}
	info, err := os.Stat(path)
	if err != nil {
		return &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}
	return nil
}

// buildTable turns raw sheet text into a Table: the first row is the header,
// fully blank rows are dropped, null-marker cells are missing, cells stored as
// text keep their text, other ordinary cells are typed by inferCell.
func buildTable(sheet string, data sheetData, schema Schema) (*Table, error) {
	raw := data.rows
	if len(raw) == 0 {
		t, err := NewTable(nil, nil)
		if err != nil {
			return nil, err
		}
		t.Name = sheet
		return t, nil
	}
	width := 0
	for _, r := range raw {
		width = max(width, len(r))
	}
	columns := headerNames(raw[0], width)
	force := make([]bool, width)
	for j, c := range columns {
		force[j] = schema.IsForceText(c)
	}

	rows := make([][]any, 0, len(raw)-1)
	for i, r := range raw[1:] {
		if blankRow(r) {
			continue
		}
		row := make([]any, width)
		for j, s := range r {
			switch {
			case strings.TrimSpace(s) == "", slices.Contains(schema.NullMarkers, s):
				row[j] = nil
			case force[j], data.isText(i+1, j):
				row[j] = s
			default:
				row[j] = inferCell(s)
			}
		}
		rows = append(rows, row)
	}
	t, err := NewTable(columns, rows)
	if err != nil {
		return nil, fmt.Errorf("build table: %w", err)
	}
	t.Name = sheet
	return NormalizeText(t, schema.ForceText, schema.NullMarkers), nil
}

// headerNames names every column: blanks become "Unnamed: <i>", repeats get a
// ".<n>" suffix.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]bool, width)
	for j := 0; j < width; j++ {
		var name string
		if j < len(header) {
			name = strings.TrimSpace(header[j])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", j)
		}
		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		seen[candidate] = true
		names[j] = candidate
	}
	return names
}

func blankRow(r []string) bool {
	for _, s := range r {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// inferCell keeps finite decimal numbers as float64 and everything else as
// the cell text.
func inferCell(s string) any {
	v := strings.TrimSpace(s)
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		return s
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return s
	}
	return x
}
