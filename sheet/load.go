package sheet

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// utf8BOM is prepended to CSV exports by some spreadsheet programs.
const utf8BOM = "\ufeff"

// Load reads a table from path, selecting the loader by file extension.
// For workbooks, sheet names the worksheet; empty selects the first one.
func Load(path string, sheet string) (tab *Table, err error) {
	ext := strings.ToLower(filepath.Ext(path))

	var loader func(io.Reader) (*Table, error)
	switch ext {
	case ".csv":
		loader = func(r io.Reader) (*Table, error) { return LoadCSV(r, ',') }
	case ".tsv", ".tab":
		loader = func(r io.Reader) (*Table, error) { return LoadCSV(r, '\t') }
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		loader = func(r io.Reader) (*Table, error) { return LoadXLSX(r, sheet) }
	default:
		err = ErrFormat(ext)
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return loader(inf)
}

// LoadCSV reads a delimited table. Rows may be ragged.
func LoadCSV(input io.Reader, comma rune) (tab *Table, err error) {
	rd := csv.NewReader(input)
	rd.Comma = comma
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	records, err := rd.ReadAll()
	if err != nil {
		return
	}

	if len(records) == 0 {
		err = ErrTableEmpty
		return
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	tab = &Table{
		Header: header,
		Rows:   records[1:],
	}

	return
}

// LoadXLSX reads a worksheet from an Office Open XML workbook.
func LoadXLSX(input io.Reader, sheet string) (tab *Table, err error) {
	book, err := excelize.OpenReader(input)
	if err != nil {
		return
	}
	defer book.Close()

	if len(sheet) == 0 {
		list := book.GetSheetList()
		if len(list) == 0 {
			err = ErrTableEmpty
			return
		}
		sheet = list[0]
	} else if index, _ := book.GetSheetIndex(sheet); index < 0 {
		err = ErrSheetMissing(sheet)
		return
	}

	rows, err := book.GetRows(sheet)
	if err != nil {
		return
	}

	if len(rows) == 0 {
		err = ErrTableEmpty
		return
	}

	tab = &Table{
		Header: rows[0],
		Rows:   rows[1:],
	}

	return
}
