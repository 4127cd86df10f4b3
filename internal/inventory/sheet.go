package inventory

import (
	"fmt"
	"strconv"
)

// Sheet selects one sheet of a workbook, by zero-based index or by name.
// The zero value selects the first sheet.
type Sheet struct {
	index  int
	name   string
	byName bool
}

// SheetIndex selects the sheet at zero-based position i.
func SheetIndex(i int) Sheet { return Sheet{index: i} }

// SheetName selects the sheet with exactly this name.
func SheetName(name string) Sheet { return Sheet{name: name, byName: true} }

func (s Sheet) String() string {
	if s.byName {
		return strconv.Quote(s.name)
	}
	return fmt.Sprintf("#%d", s.index)
}

// resolve maps the selector onto the available sheet names.
func (s Sheet) resolve(available []string) (string, error) {
	if s.byName {
		for _, n := range available {
			if n == s.name {
				return n, nil
			}
		}
		return "", &InvalidSheetError{Sheet: s, Available: available}
	}
	if s.index < 0 || s.index >= len(available) {
		return "", &InvalidSheetError{Sheet: s, Available: available}
	}
	return available[s.index], nil
}
