package inventory

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, columns []string, rows ...[]any) *Table {
	t.Helper()
	tbl, err := NewTable(columns, rows)
	require.NoError(t, err)
	return tbl
}

func chemicals(t *testing.T) *Table {
	t.Helper()
	return mustTable(t, []string{"Name", "Location", "Catalog #", "Qty"},
		[]any{"Sodium Chloride", "Shelf A", "12345", 3.0},
		[]any{"Sodium Hydroxide", "Shelf B", "S-778", nil},
		[]any{"Acetone", "Cabinet 3", "", 1},
		[]any{"Acetic Acid (glacial)", "Cabinet 3", "A.1", int64(2)},
	)
}

func names(t *testing.T, tbl *Table) []string {
	t.Helper()
	var out []string
	for i := 0; i < tbl.Len(); i++ {
		v, ok := tbl.Value(i, "Name")
		require.True(t, ok)
		out = append(out, v.(string))
	}
	return out
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []string{"sodium", "shelf", "a"}, Terms("  Sodium\tSHELF  a\n"))
	assert.Empty(t, Terms(""))
	assert.Empty(t, Terms(" \t\n "))
}

func TestSearch_EmptyQuery(t *testing.T) {
	tbl := chemicals(t)
	for _, q := range []string{"", "   ", "\t\n"} {
		res, err := Search(tbl, q, []string{"Name"})
		require.ErrorIs(t, err, ErrEmptyQuery)
		assert.Equal(t, KindEmptyQuery, KindOf(err))
		assert.True(t, IsInfo(err))
		require.NotNil(t, res)
		assert.Equal(t, 0, res.Len())
	}
	// the search column set is not consulted for a blank query
	_, err := Search(tbl, "", nil)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_EmptyInventory(t *testing.T) {
	empty := mustTable(t, []string{"Name"})
	for _, tbl := range []*Table{nil, empty} {
		res, err := Search(tbl, "acetone", []string{"Name"})
		require.ErrorIs(t, err, ErrEmptyInventory)
		assert.Equal(t, KindEmptyInventory, KindOf(err))
		assert.True(t, IsInfo(err))
		require.NotNil(t, res)
		assert.Equal(t, 0, res.Len())
	}
	// empty inventory is reported before an empty query
	_, err := Search(empty, "", []string{"Name"})
	assert.ErrorIs(t, err, ErrEmptyInventory)
}

func TestSearch_NoSearchableColumns(t *testing.T) {
	tbl := chemicals(t)
	for _, cols := range [][]string{nil, {}, {"Vendor"}, {"name", "LOCATION"}} {
		res, err := Search(tbl, "sodium", cols)
		require.ErrorIs(t, err, ErrNoSearchableColumns)
		assert.Equal(t, KindNoSearchableColumns, KindOf(err))
		assert.False(t, IsInfo(err))
		assert.Nil(t, res)
	}
}

func TestSearch_AllTermsMustMatch(t *testing.T) {
	res, err := Search(chemicals(t), "sodium shelf a", []string{"Name", "Location"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sodium Chloride"}, names(t, res))
}

func TestSearch_TermMayMatchAnyColumn(t *testing.T) {
	res, err := Search(chemicals(t), "cabinet", []string{"Name", "Location"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Acetone", "Acetic Acid (glacial)"}, names(t, res))

	res, err = Search(chemicals(t), "cabinet", []string{"Name"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestSearch_CaseInsensitive(t *testing.T) {
	for _, q := range []string{"ACETONE", "acetone", "AcEtOnE"} {
		res, err := Search(chemicals(t), q, []string{"Name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Acetone"}, names(t, res), "query %q", q)
	}
}

func TestSearch_SubstringNotWholeWord(t *testing.T) {
	res, err := Search(chemicals(t), "hydrox", []string{"Name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sodium Hydroxide"}, names(t, res))

	res, err = Search(chemicals(t), "234", []string{"Catalog #"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sodium Chloride"}, names(t, res))
}

func TestSearch_LiteralMatching(t *testing.T) {
	tbl := chemicals(t)
	tests := []struct {
		query string
		want  []string
	}{
		{"(glacial)", []string{"Acetic Acid (glacial)"}},
		{"a.1", []string{"Acetic Acid (glacial)"}},
		{"a.c", nil},
		{".*", nil},
		{"s-7", []string{"Sodium Hydroxide"}},
	}
	for _, tt := range tests {
		res, err := Search(tbl, tt.query, []string{"Name", "Catalog #"})
		require.NoError(t, err)
		var got []string
		if res.Len() > 0 {
			got = names(t, res)
		}
		assert.Equal(t, tt.want, got, "query %q", tt.query)
	}
}

func TestSearch_NumbersAndMissingValues(t *testing.T) {
	tbl := chemicals(t)
	res, err := Search(tbl, "3", []string{"Qty"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sodium Chloride"}, names(t, res))

	res, err = Search(tbl, "2", []string{"Qty"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Acetic Acid (glacial)"}, names(t, res))

	for _, q := range []string{"nil", "<nil>", "nan"} {
		res, err = Search(tbl, q, []string{"Qty"})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Len(), "missing values must not match %q", q)
	}
}

func TestSearch_PreservesOrderAndColumns(t *testing.T) {
	tbl := chemicals(t)
	res, err := Search(tbl, "a", []string{"Location"})
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), res.Columns())
	assert.Equal(t, []string{"Sodium Chloride", "Acetone", "Acetic Acid (glacial)"}, names(t, res))

	// every result row is verbatim from the source
	for i := 0; i < res.Len(); i++ {
		found := false
		for j := 0; j < tbl.Len(); j++ {
			if assert.ObjectsAreEqual(tbl.Row(j), res.Row(i)) {
				found = true
				break
			}
		}
		assert.True(t, found, "row %d not in source", i)
	}
}

func TestSearch_IgnoresUnknownColumns(t *testing.T) {
	res, err := Search(chemicals(t), "shelf", []string{"Vendor", "Location", "Location"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
}

func TestSearch_TermOrderDoesNotMatter(t *testing.T) {
	a, err := Search(chemicals(t), "shelf sodium b", []string{"Name", "Location"})
	require.NoError(t, err)
	b, err := Search(chemicals(t), "b sodium shelf", []string{"Name", "Location"})
	require.NoError(t, err)
	assert.Equal(t, names(t, a), names(t, b))
	assert.Equal(t, []string{"Sodium Hydroxide"}, names(t, a))
}

func TestSearch_IsRepeatableAndConcurrent(t *testing.T) {
	tbl := chemicals(t)
	first, err := Search(tbl, "sodium", []string{"Name"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Table, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Search(tbl, "sodium", []string{"Name"})
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, first.Records(), results[i].Records())
	}
	assert.Equal(t, 4, tbl.Len(), "source is untouched")
}

func TestSearch_UnconvertibleValueFails(t *testing.T) {
	tbl := mustTable(t, []string{"Name", "Blob"},
		[]any{"Acetone", "fine"},
		[]any{"Ethanol", struct{ X int }{1}},
	)
	res, err := Search(tbl, "acetone", []string{"Name", "Blob"})
	assert.Nil(t, res)
	var se *SearchError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, "Blob", se.Column)
	assert.Equal(t, 1, se.Row)
	assert.ErrorIs(t, err, ErrNotText)
	assert.Equal(t, KindSearch, KindOf(err))
	assert.False(t, IsInfo(err))

	// the same table is searchable when the bad column is not selected
	res, err = Search(tbl, "acetone", []string{"Name"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
}

func TestSearch_TimeValues(t *testing.T) {
	tbl := mustTable(t, []string{"Name", "Expires"},
		[]any{"Buffer", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	)
	res, err := Search(tbl, "2026-03", []string{"Expires"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
}
