package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/parishworks/steward/config"
	"github.com/parishworks/steward/models"
)

// GetReportSnapshot computes the aggregate reports view: totals, YTD
// maintenance cost, category distribution, and the recent maintenance
// log. Pure aggregation over a single fetch of each table.
func GetReportSnapshot(w http.ResponseWriter, r *http.Request) {
	limit := models.DefaultRecentMaintenanceLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("recent")); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	var items []models.InventoryItem
	if err := config.DB.Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var records []models.MaintenanceRecord
	if err := config.DB.Find(&records).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var acquisitions []models.AcquisitionRecord
	if err := config.DB.Find(&acquisitions).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	snapshot := models.ComputeReportSnapshot(items, records, acquisitions, time.Now(), limit)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
