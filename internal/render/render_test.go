package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample(t *testing.T) *inventory.Table {
	t.Helper()
	tbl, err := inventory.NewTable([]string{"Item Name *", "Lot Number", "Qty"}, [][]any{
		{"Taq | Polymerase", "00417", 2.0},
		{"Buffer", "", nil},
	})
	require.NoError(t, err)
	return tbl
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"": FormatTable, "TABLE": FormatTable, "csv": FormatCSV, "json": FormatJSON,
		"yml": FormatYAML, "yaml": FormatYAML, "md": FormatMarkdown, " markdown ": FormatMarkdown,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "table|csv|json|yaml|markdown")
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(t), FormatCSV))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Item Name *", "Lot Number", "Qty"},
		{"Taq | Polymerase", "00417", "2"},
		{"Buffer", "", ""},
	}, recs)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(t), FormatJSON))
	var got jsonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"Item Name *", "Lot Number", "Qty"}, got.Columns)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "00417", got.Rows[0]["Lot Number"])
	assert.Equal(t, "", got.Rows[1]["Qty"])
}

func TestWrite_JSONEmpty(t *testing.T) {
	tbl, err := inventory.NewTable(nil, nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl, FormatJSON))
	assert.JSONEq(t, `{"columns":[],"count":0,"rows":[]}`, buf.String())
}

func TestWrite_YAMLKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(t), FormatYAML))
	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "00417", got[0]["Lot Number"])
	assert.Equal(t, "2", got[0]["Qty"])
	assert.Less(t, strings.Index(buf.String(), "Item Name *"), strings.Index(buf.String(), "Lot Number"))
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(t), FormatMarkdown))
	want := "| Item Name * | Lot Number | Qty |\n" +
		"| --- | --- | --- |\n" +
		"| Taq \\| Polymerase | 00417 | 2 |\n" +
		"| Buffer |  |  |\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(t), FormatTable))
	out := buf.String()
	for _, s := range []string{"Item Name *", "Lot Number", "00417", "Buffer"} {
		assert.Contains(t, out, s)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, sample(t), Format("xml")))
}
