package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status is the usage axis of an item. Independent of Condition: an item
// can be Available and still need repair.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusInUse       Status = "In Use"
	StatusUnderRepair Status = "Under Repair"
	StatusOutOfStock  Status = "Out of Stock"
	StatusMissing     Status = "Missing"
)

// Condition is the physical-state axis of an item.
type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionGood        Condition = "Good"
	ConditionFair        Condition = "Fair"
	ConditionNeedsRepair Condition = "Needs Repair"
	ConditionBroken      Condition = "Broken"
)

// Categories is the fixed set the add-item form offers.
var Categories = []string{
	"Audio", "Video", "Lighting", "Instruments",
	"Cables", "Consumables", "Furniture", "Other",
}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusUnderRepair, StatusOutOfStock, StatusMissing:
		return true
	}
	return false
}

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionNeedsRepair, ConditionBroken:
		return true
	}
	return false
}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

var ErrNegativeQuantity = errors.New("quantity must not be negative")

// InventoryItem represents one tracked piece of equipment.
type InventoryItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"              json:"id"`
	Name         string         `gorm:"size:255;not null"                 json:"name"`
	Category     string         `gorm:"size:100;not null;index"           json:"category"`
	Quantity     int            `gorm:"not null;default:0"                json:"quantity"`
	Status       Status         `gorm:"size:50;not null;index"            json:"status"`
	Condition    Condition      `gorm:"size:50;not null;index"            json:"condition"`
	Brand        *string        `gorm:"size:100"                          json:"brand,omitempty"`
	Model        *string        `gorm:"size:100"                          json:"model,omitempty"`
	SerialNumber *string        `gorm:"size:100"                          json:"serialNumber,omitempty"`
	Location     *string        `gorm:"size:255"                          json:"location,omitempty"`
	Notes        *string        `gorm:"type:text"                         json:"notes,omitempty"`
	ImageURL     *string        `gorm:"size:1024"                         json:"imageUrl,omitempty"`
	Photos       datatypes.JSON `gorm:"type:jsonb"                        json:"photos"` // array of uploaded photo URLs

	DatePurchased *JSONTime `json:"datePurchased,omitempty"`
	LastChecked   *JSONTime `json:"lastChecked,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`

	MaintenanceHistory []MaintenanceRecord `gorm:"foreignKey:ItemID" json:"maintenanceHistory"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	i.Normalize()
	return nil
}

func (i *InventoryItem) BeforeUpdate(tx *gorm.DB) error {
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Normalize fills display defaults so consumers always receive a fully
// populated shape. Replaces the field coalescing previously scattered
// across the presentation layer.
func (i *InventoryItem) Normalize() {
	if i.Status == "" {
		i.Status = StatusAvailable
	}
	if i.Condition == "" {
		i.Condition = ConditionGood
	}
	if i.Category == "" {
		i.Category = "Other"
	}
	if i.Photos == nil {
		i.Photos = datatypes.JSON([]byte("[]"))
	}
	if i.MaintenanceHistory == nil {
		i.MaintenanceHistory = []MaintenanceRecord{}
	}
}

// BrandModel returns the combined display string, e.g. "Shure SM58".
// Either half may be missing.
func (i *InventoryItem) BrandModel() string {
	var parts []string
	if i.Brand != nil && *i.Brand != "" {
		parts = append(parts, *i.Brand)
	}
	if i.Model != nil && *i.Model != "" {
		parts = append(parts, *i.Model)
	}
	return strings.Join(parts, " ")
}

// NeedsMaintenance reports whether the item counts toward the "needs
// maintenance" figure on the reports page.
func (i *InventoryItem) NeedsMaintenance() bool {
	return i.Status == StatusUnderRepair ||
		i.Condition == ConditionNeedsRepair ||
		i.Condition == ConditionBroken
}

// NeedsReplacement reports whether the item is past repair.
func (i *InventoryItem) NeedsReplacement() bool {
	return i.Condition == ConditionBroken
}
