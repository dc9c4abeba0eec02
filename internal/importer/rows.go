// Package importer reads and writes item shape lists. The canonical format
// is a five-column CSV; the same schema can also be imported from the first
// sheet of an Excel workbook.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Columns is the exact header an item shape file must carry, in order.
var Columns = []string{"Product_Name", "Length", "Width", "Height", "Quantity"}

// ErrSchema is returned when a file's header row does not match Columns.
var ErrSchema = errors.New("importer: header does not match expected schema")

// Row is one shape group: a named box dimension triple and how many copies
// of it the instance contains.
type Row struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Length   int32  `json:"length"`
	Width    int32  `json:"width"`
	Height   int32  `json:"height"`
	Quantity int32  `json:"quantity"`
}

// NewRow builds a row with a fresh short ID.
func NewRow(name string, length, width, height, quantity int32) Row {
	return Row{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Length:   length,
		Width:    width,
		Height:   height,
		Quantity: quantity,
	}
}

// ReadCSV reads item rows from a CSV file, enforcing the exact column
// schema. Any mismatch in column count, names, or order is a schema error.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ReadCSVFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadCSVFrom is ReadCSV over an arbitrary reader.
func ReadCSVFrom(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrSchema)
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}
	return parseRows(records[1:])
}

// ImportExcel reads item rows from the first sheet of an .xlsx workbook.
// The sheet must carry the same header row as the CSV schema.
func ImportExcel(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrSchema, sheets[0])
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}
	rows, err := parseRows(records[1:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// WriteCSV writes rows to a CSV file under the canonical header.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSVTo(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSVTo writes rows to an arbitrary writer.
func WriteCSVTo(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.FormatInt(int64(row.Length), 10),
			strconv.FormatInt(int64(row.Width), 10),
			strconv.FormatInt(int64(row.Height), 10),
			strconv.FormatInt(int64(row.Quantity), 10),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", row.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteExcel writes rows to an .xlsx workbook under the canonical header.
func WriteExcel(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, row := range rows {
		values := []interface{}{row.Name, row.Length, row.Width, row.Height, row.Quantity}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %q: %w", row.Name, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrSchema, len(header), len(Columns))
	}
	for i, name := range Columns {
		if header[i] != name {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrSchema, i, header[i], name)
		}
	}
	return nil
}

func parseRows(records [][]string) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for i, record := range records {
		lineNum := i + 2 // 1-based, after the header
		if isEmpty(record) {
			continue
		}
		if len(record) != len(Columns) {
			return nil, fmt.Errorf("line %d: got %d columns, want %d", lineNum, len(record), len(Columns))
		}
		length, err := parsePositive(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: length: %w", lineNum, err)
		}
		width, err := parsePositive(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: width: %w", lineNum, err)
		}
		height, err := parsePositive(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: height: %w", lineNum, err)
		}
		quantity, err := parsePositive(record[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: quantity: %w", lineNum, err)
		}
		rows = append(rows, NewRow(record[0], length, width, height, quantity))
	}
	return rows, nil
}

func parsePositive(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("value %d must be positive", v)
	}
	return int32(v), nil
}

func isEmpty(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
