// Package table holds the in-memory tabular datasets the matcher
// operates on, plus loaders for the spreadsheet formats we accept.
package table

import (
	"errors"
	"strings"
)

// Row maps a column name to its cell value. Blank cells are present
// with an empty string value, never absent.
type Row map[string]any

// Table is one loaded dataset. Headers preserves first-row column
// order; every Row carries every header key.
type Table struct {
	Headers []string
	Rows    []Row
}

var (
	ErrNoSheets  = errors.New("workbook contains no sheets")
	ErrNoHeaders = errors.New("sheet is empty or has no header row")
)

// HasHeader reports whether name is a member of the table's header set.
func (t *Table) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// fromRecords builds a Table from raw string records, treating the
// first record as the header row. Short records are padded so every
// row carries every header.
func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrNoHeaders
	}

	var headers []string
	for _, cell := range records[0] {
		headers = append(headers, strings.TrimSpace(cell))
	}

	empty := true
	for _, h := range headers {
		if h != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil, ErrNoHeaders
	}

	t := &Table{Headers: headers, Rows: make([]Row, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
