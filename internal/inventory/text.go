package inventory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrNotText is returned when a cell value has no text form.
var ErrNotText = errors.New("value cannot be converted to text")

const timeLayout = "2006-01-02 15:04:05"

// cellText is the strict text conversion used for matching. Missing values and
// NaN render as "".
func cellText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		if math.IsNaN(x) {
			return "", nil
		}
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		if math.IsNaN(float64(x)) {
			return "", nil
		}
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x.Format(timeLayout), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNotText, v)
	}
}

// looseText never fails: anything without a strict form goes through
// fmt.Sprint, and literal null markers collapse to "".
func looseText(v any, nullMarkers []string) string {
	s, err := cellText(v)
	if err != nil {
		s = fmt.Sprint(v)
	}
	for _, m := range nullMarkers {
		if s == m {
			return ""
		}
	}
	return s
}

// DisplayText renders a cell for output. It never fails.
func DisplayText(v any) string {
	return looseText(v, nil)
}

// NormalizeText returns a copy of t in which every listed column that exists
// holds strings, with missing values as "". A column whose values cannot all
// be converted strictly falls back to the loose conversion, which also strips
// the given null markers; other columns are unaffected. Tables from Load only
// hold strings and numbers, so the fallback serves tables built with NewTable.
func NormalizeText(t *Table, columns []string, nullMarkers []string) *Table {
	if t == nil {
		return nil
	}
	targets := t.intersect(columns)
	if len(targets) == 0 {
		return t
	}
	out := &Table{Name: t.Name, columns: t.columns, index: t.index, rows: make([][]any, len(t.rows))}
	for i, r := range t.rows {
		out.rows[i] = append([]any(nil), r...)
	}
	for _, c := range targets {
		j := t.index[c]
		if coerceStrict(t.rows, out.rows, j) {
			continue
		}
		for i, r := range t.rows {
			out.rows[i][j] = looseText(r[j], nullMarkers)
		}
	}
	return out
}

// coerceStrict converts column j of src into dst. It stops at the first value
// without a strict text form and reports false.
func coerceStrict(src, dst [][]any, j int) bool {
	for i, r := range src {
		s, err := cellText(r[j])
		if err != nil {
			return false
		}
		dst[i][j] = s
	}
	return true
}
