package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return buffer.Bytes()
}

func TestImporter_Parse(t *testing.T) {
	importer := NewImporter()

	t.Run("should map rows by header cells", func(t *testing.T) {
		data := buildWorkbook(t, [][]interface{}{
			{"Название", "Цена"},
			{"Плов", 32000},
			{"Лагман", 28000},
		})

		rows, err := importer.Parse(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0]["Название"] != "Плов" {
			t.Errorf("expected Плов, got %s", rows[0]["Название"])
		}
		if rows[0]["Цена"] != "32000" {
			t.Errorf("expected 32000, got %s", rows[0]["Цена"])
		}
		if rows[1]["Название"] != "Лагман" {
			t.Errorf("expected Лагман, got %s", rows[1]["Название"])
		}
	})

	t.Run("should pad short rows with empty cells", func(t *testing.T) {
		data := buildWorkbook(t, [][]interface{}{
			{"Название", "Цена"},
			{"Самса"},
		})

		rows, err := importer.Parse(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0]["Цена"] != "" {
			t.Errorf("expected empty price cell, got %s", rows[0]["Цена"])
		}
	})

	t.Run("should return no rows for a header only sheet", func(t *testing.T) {
		data := buildWorkbook(t, [][]interface{}{
			{"Название", "Цена"},
		})

		rows, err := importer.Parse(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("should reject data that is not a workbook", func(t *testing.T) {
		if _, err := importer.Parse([]byte("not an xlsx file")); err == nil {
			t.Error("expected an error")
		}
	})
}
