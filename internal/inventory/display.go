package inventory

// fallbackDisplayWidth is how many leading columns are shown when neither the
// selection nor the schema defaults name an existing column.
const fallbackDisplayWidth = 5

// DisplayColumns decides which columns of t to render. With showAll every
// column is used. Otherwise the existing selected columns are used, then the
// schema's display defaults, then the first few columns.
func DisplayColumns(t *Table, selected []string, schema Schema, showAll bool) []string {
	if t == nil {
		return nil
	}
	if showAll {
		return t.Columns()
	}
	if cols := t.intersect(selected); len(cols) > 0 {
		return cols
	}
	if cols := t.intersect(schema.DisplayColumns); len(cols) > 0 {
		return cols
	}
	all := t.Columns()
	if len(all) > fallbackDisplayWidth {
		all = all[:fallbackDisplayWidth]
	}
	return all
}

// DefaultSearchColumns is the schema's search selection restricted to t.
func DefaultSearchColumns(t *Table, schema Schema) []string {
	if t == nil {
		return nil
	}
	return t.intersect(schema.SearchColumns)
}
