package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/parishworks/steward/config"
	"github.com/parishworks/steward/models"
)

// GetAllItems lists inventory items with optional status/condition/
// category filters, free-text search, and pagination. Newest first by
// default. No matches is an empty page, not an error.
func GetAllItems(w http.ResponseWriter, r *http.Request) {
	params := models.ParseListParams(r)
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := config.DB.Model(&models.InventoryItem{})
	query = applyItemFilters(query, params)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	order := "created_at DESC"
	if !params.SortDesc {
		order = "created_at ASC"
	}

	var items []models.InventoryItem
	if err := query.
		Order(order).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	for i := range items {
		items[i].Normalize()
	}

	response := map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"data":  items,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func applyItemFilters(query *gorm.DB, params models.ListParams) *gorm.DB {
	if len(params.Statuses) > 0 {
		query = query.Where("status IN ?", params.Statuses)
	}
	if len(params.Conditions) > 0 {
		query = query.Where("condition IN ?", params.Conditions)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}
	return query
}

type createItemReq struct {
	models.InventoryItem
	PurchasePrice string  `json:"purchasePrice,omitempty"`
	Vendor        *string `json:"vendor,omitempty"`
}

// CreateItem registers new equipment. When the form carries a purchase
// price, the acquisition record is written in the same transaction so
// asset-value reporting never sees half the insert.
func CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	item := req.InventoryItem
	item.Normalize()
	if item.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if item.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}
	if !item.Status.Valid() || !item.Condition.Valid() || !models.ValidCategory(item.Category) {
		http.Error(w, "unknown status, condition, or category", http.StatusBadRequest)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if price := models.ParseCost(req.PurchasePrice); price > 0 {
			acq := models.AcquisitionRecord{
				ItemID: item.ID,
				Price:  price,
				Vendor: req.Vendor,
			}
			if item.DatePurchased != nil {
				acq.AcquiredAt = *item.DatePurchased
			}
			if err := tx.Create(&acq).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetItem returns one item with its maintenance history attached,
// newest record first. A failing history query degrades to the item
// with an empty history rather than failing the whole view.
func GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	item.Normalize()
	item.MaintenanceHistory = fetchHistory(item)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func fetchHistory(item models.InventoryItem) []models.MaintenanceRecord {
	history := []models.MaintenanceRecord{}
	err := config.DB.
		Where("item_id = ?", item.ID).
		Order("maintenance_date DESC, created_at DESC, id ASC").
		Find(&history).Error
	if err != nil {
		// Documented fallback: missing history must not fail the item.
		return []models.MaintenanceRecord{}
	}
	return history
}

// UpdateItem persists edits from the edit-item form.
func UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	keep := item.ID
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = keep
	if item.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}
	if !item.Status.Valid() || !item.Condition.Valid() || !models.ValidCategory(item.Category) {
		http.Error(w, "unknown status, condition, or category", http.StatusBadRequest)
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteItem retires an item. Deletes are soft; history and acquisition
// rows stay behind for reporting.
func DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.InventoryItem{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResolveItem returns an item to service: status back to Available,
// condition reset, and a Resolved entry appended to its history.
func ResolveItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Description string `json:"description"`
		PerformedBy string `json:"performedBy"`
		Cost        string `json:"cost"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Description == "" {
		req.Description = "Returned to service"
	}

	var item models.InventoryItem
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}

		record := models.MaintenanceRecord{
			ItemID:      item.ID,
			Type:        models.MaintenanceResolved,
			Description: req.Description,
			PerformedBy: req.PerformedBy,
			Cost:        models.ParseCost(req.Cost),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		next := models.ApplyMaintenanceEvent(models.ItemState{Status: item.Status, Condition: item.Condition}, models.MaintenanceResolved)
		item.Status = next.Status
		item.Condition = next.Condition
		return tx.Model(&item).Updates(map[string]interface{}{
			"status":    string(next.Status),
			"condition": string(next.Condition),
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}
