package sheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

const regsCSV = `Register Name,Offset,Read/Write,Fields,Default value,Reset value,Description
CTRL,0x0,RW,EN,1,0,"control, main"
,,,MODE [3:1],,,
STATUS,0x4,RO,BUSY
`

func TestLoadCSV(t *testing.T) {
	assert := assert.New(t)

	tab, err := LoadCSV(strings.NewReader(regsCSV), ',')
	assert.NoError(err)
	assert.Equal(stdHeader, tab.Header)
	assert.Equal(3, len(tab.Rows))
	assert.Equal("control, main", tab.Rows[0][6])
	assert.Equal([]string{"STATUS", "0x4", "RO", "BUSY"}, tab.Rows[2])

	rows, err := tab.Bind(DefaultColumns())
	assert.NoError(err)
	assert.Equal("", rows[2].Default)
}

func TestLoadCSVBOM(t *testing.T) {
	assert := assert.New(t)

	tab, err := LoadCSV(strings.NewReader("\ufeff"+regsCSV), ',')
	assert.NoError(err)
	assert.Equal("Register Name", tab.Header[0])
}

func TestLoadCSVEmpty(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadCSV(strings.NewReader(""), ',')
	assert.ErrorIs(err, ErrTableEmpty)
}

func TestLoadTSV(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "regs.tsv")
	data := strings.Join(stdHeader, "\t") + "\nCTRL\t0\tRW\tEN [0:0]\t\t\t\n"
	assert.NoError(os.WriteFile(path, []byte(data), 0o644))

	tab, err := Load(path, "")
	assert.NoError(err)
	assert.Equal(stdHeader, tab.Header)
	assert.Equal("EN [0:0]", tab.Rows[0][3])
}

func writeWorkbook(t *testing.T, path string, sheet string, cells [][]string) {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	if sheet != "Sheet1" {
		_, err := book.NewSheet(sheet)
		if err != nil {
			t.Fatal(err)
		}
	}

	for n, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, n+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestLoadXLSX(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "regs.xlsx")
	writeWorkbook(t, path, "Sheet1", [][]string{
		stdHeader,
		{"CTRL", "0x0", "RW", "EN", "1", "0", "control"},
		{"", "", "", "MODE [3:1]", "", "", ""},
	})

	tab, err := Load(path, "")
	assert.NoError(err)
	assert.Equal(stdHeader, tab.Header)
	assert.Equal(2, len(tab.Rows))

	rows, err := tab.Bind(DefaultColumns())
	assert.NoError(err)
	assert.Equal("CTRL", rows[0].RegisterName)
	assert.Equal("MODE [3:1]", rows[1].Field)
}

func TestLoadXLSXNamedSheet(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "regs.xlsx")
	writeWorkbook(t, path, "dma", [][]string{
		stdHeader,
		{"STATUS", "0x4", "RO", "BUSY", "", "", ""},
	})

	tab, err := Load(path, "dma")
	assert.NoError(err)
	assert.Equal("STATUS", tab.Rows[0][0])

	_, err = Load(path, "nope")
	assert.Equal(ErrSheetMissing("nope"), err)
}

func TestLoadFormat(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("registers.ods", "")
	assert.Equal(ErrFormat(".ods"), err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.ErrorIs(err, os.ErrNotExist)
}
