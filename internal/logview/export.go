package logview

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

const sheetName = "会话日志"

func (v *implViewer) Export(path string) error {
	return Export(path, v.Records())
}

// Export writes records to path as JSON, CSV or XLSX by extension.
func Export(path string, records []convlog.Record) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = exportExcel(path, records)
	case ".csv":
		err = exportCSV(path, records)
	default:
		err = exportJSON(path, records)
	}
	if err != nil {
		return fmt.Errorf("export %d records to %s: %w", len(records), path, err)
	}
	return nil
}

func exportJSON(path string, records []convlog.Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func exportCSV(path string, records []convlog.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append(append([]string{}, Columns...), "错误信息")); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(append(NewRow(r).Values(), r.Error)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func exportExcel(path string, records []convlog.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	failedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFE8E8"}, Pattern: 1},
	})

	headers := append(append([]string{}, Columns...), "错误信息")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIndex, r := range records {
		row := NewRow(r)
		values := []interface{}{row.Time, row.SessionID, row.Model, row.Status, r.ProcessingTime, row.ResponseLength, r.Error}
		for i, val := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIndex+2)
			f.SetCellValue(sheetName, cell, val)
		}
		if !r.Success {
			first, _ := excelize.CoordinatesToCellName(1, rowIndex+2)
			last, _ := excelize.CoordinatesToCellName(len(values), rowIndex+2)
			f.SetCellStyle(sheetName, first, last, failedStyle)
		}
	}

	f.SetColWidth(sheetName, "A", "C", 22)
	f.SetColWidth(sheetName, "D", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 40)

	return f.SaveAs(path)
}
