package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/parishworks/steward/config"
	"github.com/parishworks/steward/middleware"
	"github.com/parishworks/steward/models"
)

type logIssueReq struct {
	ItemID              string           `json:"itemId"`
	Type                string           `json:"maintenanceType"`
	Priority            string           `json:"priority"`
	Description         string           `json:"description"`
	PerformedBy         string           `json:"performedBy"`
	MaintenanceDate     *models.JSONTime `json:"maintenanceDate,omitempty"`
	Cost                string           `json:"cost"`
	NextMaintenanceDate *models.JSONTime `json:"nextMaintenanceDate,omitempty"`
}

// LogMaintenanceIssue appends a maintenance record to an item. Damage
// events also move the item's status/condition; record insert and item
// update happen in one transaction so a failed update never leaves a
// dangling record.
func LogMaintenanceIssue(w http.ResponseWriter, r *http.Request) {
	var req logIssueReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ItemID == "" || req.Type == "" || req.Description == "" {
		http.Error(w, "itemId, maintenanceType and description required", http.StatusBadRequest)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		http.Error(w, "invalid itemId", http.StatusBadRequest)
		return
	}

	if req.PerformedBy == "" {
		req.PerformedBy = middleware.GetUser(r).Name
	}

	record := models.MaintenanceRecord{
		ItemID:              itemID,
		Type:                models.MaintenanceType(req.Type),
		Priority:            req.Priority,
		Description:         req.Description,
		PerformedBy:         req.PerformedBy,
		Cost:                models.ParseCost(req.Cost),
		NextMaintenanceDate: req.NextMaintenanceDate,
	}
	if req.MaintenanceDate != nil {
		record.MaintenanceDate = *req.MaintenanceDate
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		cur := models.ItemState{Status: item.Status, Condition: item.Condition}
		next := models.ApplyMaintenanceEvent(cur, record.Type)
		if next == cur {
			return nil
		}
		return tx.Model(&item).Updates(map[string]interface{}{
			"status":    string(next.Status),
			"condition": string(next.Condition),
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// GetItemMaintenanceHistory lists an item's maintenance records, newest
// first with deterministic tie-breaking.
func GetItemMaintenanceHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	history := []models.MaintenanceRecord{}
	if err := config.DB.
		Where("item_id = ?", item.ID).
		Order("maintenance_date DESC, created_at DESC, id ASC").
		Find(&history).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}

// GetRecentMaintenance returns the latest maintenance records across all
// items, for the dashboard log widget.
func GetRecentMaintenance(w http.ResponseWriter, r *http.Request) {
	limit := models.DefaultRecentMaintenanceLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	records := []models.MaintenanceRecord{}
	if err := config.DB.
		Preload("Item").
		Order("maintenance_date DESC, created_at DESC, id ASC").
		Limit(limit).
		Find(&records).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// GetItemAcquisitions lists what was paid for an item over time.
func GetItemAcquisitions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	acquisitions := []models.AcquisitionRecord{}
	if err := config.DB.
		Where("item_id = ?", item.ID).
		Order("acquired_at DESC").
		Find(&acquisitions).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(acquisitions)
}

// CreateItemAcquisition records a purchase against an existing item.
func CreateItemAcquisition(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var req struct {
		Price      string           `json:"price"`
		Vendor     *string          `json:"vendor,omitempty"`
		AcquiredAt *models.JSONTime `json:"acquiredAt,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	acq := models.AcquisitionRecord{
		ItemID: item.ID,
		Price:  models.ParseCost(req.Price),
		Vendor: req.Vendor,
	}
	if req.AcquiredAt != nil {
		acq.AcquiredAt = *req.AcquiredAt
	}

	if err := config.DB.Create(&acq).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(acq)
}
