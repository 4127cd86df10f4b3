package inventory

import "strings"

// Terms lowercases query and splits it on whitespace. Order is preserved.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Search returns the rows of t in which every query term occurs, as a
// case-insensitive literal substring, in at least one of the given columns.
// The result keeps all columns of t and the source row order.
//
// An empty table or a blank query yields an empty result together with
// ErrEmptyInventory or ErrEmptyQuery; see IsInfo. If none of columns exist in
// t the error is ErrNoSearchableColumns. A cell with no text form fails the
// whole search with a *SearchError and no rows.
func Search(t *Table, query string, columns []string) (*Table, error) {
	if t.Len() == 0 {
		return t.empty(), ErrEmptyInventory
	}
	terms := Terms(query)
	if len(terms) == 0 {
		return t.empty(), ErrEmptyQuery
	}
	cols := t.intersect(columns)
	if len(cols) == 0 {
		return nil, ErrNoSearchableColumns
	}
	idx := make([]int, len(cols))
	for k, c := range cols {
		idx[k] = t.index[c]
	}

	var keep []int
	texts := make([]string, len(idx))
	for i, r := range t.rows {
		for k, j := range idx {
			s, err := cellText(r[j])
			if err != nil {
				return nil, &SearchError{Column: cols[k], Row: i, Err: err}
			}
			texts[k] = strings.ToLower(s)
		}
		if matchAll(texts, terms) {
			keep = append(keep, i)
		}
	}
	return t.subset(keep), nil
}

// matchAll: every term is found in at least one text.
func matchAll(texts, terms []string) bool {
	for _, term := range terms {
		found := false
		for _, s := range texts {
			if strings.Contains(s, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
