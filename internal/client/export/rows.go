package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/xuri/excelize/v2"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Rows is a table built on the client from rows already on screen.
type Rows struct {
	Sheet   string
	Headers []string
	Data    [][]string
}

// AuditRows lays out audit entries the way the audit page exports them.
func AuditRows(logs []models.AuditLog) Rows {
	r := Rows{
		Sheet:   "Audit Logs",
		Headers: []string{"User", "Action", "Object Type", "Object ID", "Message", "Timestamp"},
		Data:    make([][]string, 0, len(logs)),
	}
	for _, l := range logs {
		ts := ""
		if !l.CreatedAt.IsZero() {
			ts = l.CreatedAt.Format(time.RFC3339)
		}
		r.Data = append(r.Data, []string{l.Actor(), l.Action, l.ObjectType, l.ObjectID.String(), l.Message, ts})
	}
	return r
}

func filename(name string, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", name, now.Format(time.DateOnly), ext)
}

// RowsCSV encodes r as <name>-<YYYY-MM-DD>.csv.
func RowsCSV(name string, r Rows, now time.Time) (client.Blob, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(r.Headers); err != nil {
		return client.Blob{}, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(r.Data); err != nil {
		return client.Blob{}, fmt.Errorf("write csv rows: %w", err)
	}

	return client.Blob{Filename: filename(name, "csv", now), ContentType: contentTypeCSV, Data: buf.Bytes()}, nil
}

// RowsXLSX encodes r as a one-sheet workbook with a bold header row.
func RowsXLSX(name string, r Rows, now time.Time) (client.Blob, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return client.Blob{}, fmt.Errorf("new sheet: %w", err)
		}
		f.SetActiveSheet(idx)
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return client.Blob{}, fmt.Errorf("delete default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return client.Blob{}, fmt.Errorf("header style: %w", err)
	}

	for i, h := range r.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return client.Blob{}, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return client.Blob{}, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return client.Blob{}, err
		}
	}

	for ri, row := range r.Data {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return client.Blob{}, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return client.Blob{}, err
			}
		}
	}

	if n := len(r.Headers); n > 0 {
		last, err := excelize.ColumnNumberToName(n)
		if err != nil {
			return client.Blob{}, err
		}
		if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
			return client.Blob{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return client.Blob{}, fmt.Errorf("write xlsx: %w", err)
	}
	return client.Blob{Filename: filename(name, "xlsx", now), ContentType: contentTypeXLSX, Data: buf.Bytes()}, nil
}
