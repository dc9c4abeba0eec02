package importer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVFromParsesRows(t *testing.T) {
	in := "Product_Name,Length,Width,Height,Quantity\n" +
		"crate_a,1080,760,300,5\n" +
		"crate_b,1100,430,250,3\n"

	rows, err := ReadCSVFrom(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "crate_a", rows[0].Name)
	assert.Equal(t, int32(1080), rows[0].Length)
	assert.Equal(t, int32(760), rows[0].Width)
	assert.Equal(t, int32(300), rows[0].Height)
	assert.Equal(t, int32(5), rows[0].Quantity)
	assert.Len(t, rows[0].ID, 8)

	assert.Equal(t, "crate_b", rows[1].Name)
	assert.Equal(t, int32(3), rows[1].Quantity)
}

func TestReadCSVFromSkipsBlankLines(t *testing.T) {
	in := "Product_Name,Length,Width,Height,Quantity\n" +
		"crate_a,10,20,30,1\n" +
		",,,,\n" +
		"crate_b,40,50,60,2\n"

	rows, err := ReadCSVFrom(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadCSVFromHeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"missing column", "Product_Name,Length,Width,Height\n"},
		{"extra column", "Product_Name,Length,Width,Height,Quantity,Notes\n"},
		{"renamed column", "Product,Length,Width,Height,Quantity\n"},
		{"reordered columns", "Length,Product_Name,Width,Height,Quantity\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSVFrom(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestReadCSVFromValueErrors(t *testing.T) {
	header := "Product_Name,Length,Width,Height,Quantity\n"
	cases := []struct {
		name string
		row  string
		want string
	}{
		{"non-numeric length", "crate,abc,20,30,1\n", "line 2: length"},
		{"zero width", "crate,10,0,30,1\n", "line 2: width"},
		{"negative height", "crate,10,20,-5,1\n", "line 2: height"},
		{"zero quantity", "crate,10,20,30,0\n", "line 2: quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSVFrom(strings.NewReader(header + tc.row))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestWriteCSVToFormat(t *testing.T) {
	rows := []Row{
		NewRow("crate_a", 1080, 760, 300, 5),
		NewRow("crate_b", 1100, 430, 250, 3),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSVTo(&buf, rows))

	want := "Product_Name,Length,Width,Height,Quantity\n" +
		"crate_a,1080,760,300,5\n" +
		"crate_b,1100,430,250,3\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVFileRoundTrip(t *testing.T) {
	rows := []Row{
		NewRow("crate_a", 1080, 760, 300, 5),
		NewRow("crate_b", 1100, 430, 250, 3),
	}
	path := filepath.Join(t.TempDir(), "shapes.csv")
	require.NoError(t, WriteCSV(path, rows))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range rows {
		assert.Equal(t, rows[i].Name, got[i].Name)
		assert.Equal(t, rows[i].Length, got[i].Length)
		assert.Equal(t, rows[i].Width, got[i].Width)
		assert.Equal(t, rows[i].Height, got[i].Height)
		assert.Equal(t, rows[i].Quantity, got[i].Quantity)
	}
}

func TestExcelRoundTrip(t *testing.T) {
	rows := []Row{
		NewRow("crate_a", 1080, 760, 300, 5),
		NewRow("crate_b", 1100, 430, 250, 3),
	}
	path := filepath.Join(t.TempDir(), "shapes.xlsx")
	require.NoError(t, WriteExcel(path, rows))

	got, err := ImportExcel(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range rows {
		assert.Equal(t, rows[i].Name, got[i].Name)
		assert.Equal(t, rows[i].Length, got[i].Length)
		assert.Equal(t, rows[i].Width, got[i].Width)
		assert.Equal(t, rows[i].Height, got[i].Height)
		assert.Equal(t, rows[i].Quantity, got[i].Quantity)
	}
}

func TestImportExcelHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteExcel(path, nil))

	got, err := ImportExcel(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImportExcelMissingFile(t *testing.T) {
	_, err := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestNewRowIDsAreUnique(t *testing.T) {
	a := NewRow("x", 1, 1, 1, 1)
	b := NewRow("x", 1, 1, 1, 1)
	assert.NotEqual(t, a.ID, b.ID)
}
