package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// SerializeCSV renders rows as CSV: header line first, fields containing a
// comma, quote, or newline are quoted with inner quotes doubled.
func SerializeCSV(rows []Row) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.fields()); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// SerializeJSON renders rows inside a month/year envelope
func SerializeJSON(cursor store.Cursor, rows []Row) (string, error) {
	if rows == nil {
		rows = []Row{}
	}
	envelope := struct {
		Month string `json:"month"`
		Year  int    `json:"year"`
		Data  []Row  `json:"data"`
	}{Month: cursor.Month.String(), Year: cursor.Year, Data: rows}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode json export: %w", err)
	}
	return string(data), nil
}

// SerializeTable renders rows as a minimal HTML table that spreadsheet
// applications import, with the header row styled apart from the data rows.
func SerializeTable(rows []Row) string {
	var b strings.Builder
	b.WriteString("<table border=\"1\">\n")

	b.WriteString("  <tr style=\"background-color:#4a5568;color:#ffffff;font-weight:bold\">")
	for _, name := range Header {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(name))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")

	for _, row := range rows {
		b.WriteString("  <tr>")
		for _, field := range row.fields() {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(field))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>\n")
	return b.String()
}

// SerializeXLSX renders rows as a real spreadsheet workbook with one sheet
// named after the month.
func SerializeXLSX(cursor store.Cursor, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%s %d", cursor.Month.String(), cursor.Year)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, name := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for i, row := range rows {
		for col, field := range row.fields() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, field); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
