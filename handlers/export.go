package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/parishworks/steward/config"
	"github.com/parishworks/steward/models"
)

var exportHeader = []string{
	"Name", "Category", "Brand/Model", "Serial Number", "Quantity",
	"Status", "Condition", "Location", "Last Checked", "Notes",
}

func exportRow(item models.InventoryItem) []string {
	row := []string{
		item.Name,
		item.Category,
		item.BrandModel(),
		strValue(item.SerialNumber),
		strconv.Itoa(item.Quantity),
		string(item.Status),
		string(item.Condition),
		strValue(item.Location),
		"",
		strValue(item.Notes),
	}
	if item.LastChecked != nil {
		row[8] = time.Time(*item.LastChecked).Format("2006-01-02")
	}
	return row
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fetchExportItems(w http.ResponseWriter, r *http.Request) ([]models.InventoryItem, bool) {
	params := models.ParseListParams(r)
	params.Limit = 0 // exports are unpaginated
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	var items []models.InventoryItem
	query := applyItemFilters(config.DB.Model(&models.InventoryItem{}), params)
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	for i := range items {
		items[i].Normalize()
	}
	return items, true
}

// ExportInventoryToExcel streams the (optionally filtered) inventory as
// an .xlsx download.
func ExportInventoryToExcel(w http.ResponseWriter, r *http.Request) {
	items, ok := fetchExportItems(w, r)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i, item := range items {
		for col, value := range exportRow(item) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportInventoryToCSV streams the (optionally filtered) inventory as a
// CSV download.
func ExportInventoryToCSV(w http.ResponseWriter, r *http.Request) {
	items, ok := fetchExportItems(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(exportHeader); err != nil {
		http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
		return
	}
	for _, item := range items {
		if err := cw.Write(exportRow(item)); err != nil {
			http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("inventory_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
