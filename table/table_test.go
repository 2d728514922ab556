package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	csv := "Ref,Amt,Memo\nA1,$10.00,coffee\nA2,$5,\nA3,$1\n"

	tbl, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ref", "Amt", "Memo"}, tbl.Headers)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, "$10.00", tbl.Rows[0]["Amt"])
	// Blank and missing cells both materialize as empty strings
	assert.Equal(t, "", tbl.Rows[1]["Memo"])
	assert.Equal(t, "", tbl.Rows[2]["Memo"])
}

func TestLoadCSVEmptyInput(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeaders)
}

func TestLoadCSVBlankHeaderRow(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(" , , \n"))
	assert.ErrorIs(t, err, ErrNoHeaders)
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Lookup", "Account Number"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"A1", "1001"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"A2"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	tbl, err := LoadXLSX(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lookup", "Account Number"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "1001", tbl.Rows[0]["Account Number"])
	assert.Equal(t, "", tbl.Rows[1]["Account Number"], "short rows are padded with empty cells")
}

func TestLoadXLSXEmptySheet(t *testing.T) {
	f := excelize.NewFile()

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	_, err := LoadXLSX(&buf)
	assert.ErrorIs(t, err, ErrNoHeaders)
}

func TestLoadReaderDispatch(t *testing.T) {
	tbl, err := LoadReader(strings.NewReader("A,B\n1,2\n"), "upload.CSV")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, tbl.Headers)

	_, err = LoadReader(strings.NewReader("whatever"), "notes.txt")
	assert.Error(t, err)
}

func TestHasHeader(t *testing.T) {
	tbl := &Table{Headers: []string{"Ref", "Amt"}}
	assert.True(t, tbl.HasHeader("Ref"))
	assert.False(t, tbl.HasHeader("ref"))
	assert.False(t, tbl.HasHeader("Missing"))
}
