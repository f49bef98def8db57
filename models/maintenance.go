package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceType categorizes a logged issue. The set mirrors the
// log-issue form; free-form values are stored as given.
type MaintenanceType string

const (
	MaintenanceRepairNeeded MaintenanceType = "Repair Needed"
	MaintenanceBroken       MaintenanceType = "Broken"
	MaintenanceMissing      MaintenanceType = "Missing"
	MaintenanceRoutineCheck MaintenanceType = "Routine Check"
	MaintenanceDue          MaintenanceType = "Maintenance Due"
	MaintenanceResolved     MaintenanceType = "Resolved"
	MaintenanceOther        MaintenanceType = "Other"
)

// Priorities accepted by the log-issue form.
var Priorities = []string{"Low", "Medium", "High", "Critical"}

var (
	ErrMissingItemRef = errors.New("maintenance record requires an item reference")
	ErrNegativeCost   = errors.New("cost must not be negative")
)

// MaintenanceRecord is one entry in an item's maintenance history.
// Records are immutable once inserted.
type MaintenanceRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	ItemID              uuid.UUID       `gorm:"type:uuid;not null;index"    json:"itemId"`
	Item                *InventoryItem  `gorm:"foreignKey:ItemID"           json:"item,omitempty"`
	Type                MaintenanceType `gorm:"column:maintenance_type;size:50;not null" json:"type"`
	Priority            string          `gorm:"size:20"                     json:"priority,omitempty"`
	Description         string          `gorm:"type:text;not null"          json:"description"`
	PerformedBy         string          `gorm:"size:255"                    json:"performedBy"`
	MaintenanceDate     JSONTime        `gorm:"column:maintenance_date;not null;index" json:"maintenanceDate"`
	Cost                float64         `gorm:"not null;default:0"          json:"cost"`
	NextMaintenanceDate *JSONTime       `gorm:"column:next_maintenance_date" json:"nextMaintenanceDate,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName keeps the table the dashboard always queried.
func (MaintenanceRecord) TableName() string { return "inventory_item_maintenance" }

func (m *MaintenanceRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.ItemID == uuid.Nil {
		return ErrMissingItemRef
	}
	if m.Cost < 0 {
		return ErrNegativeCost
	}
	if time.Time(m.MaintenanceDate).IsZero() {
		m.MaintenanceDate = JSONTime(time.Now())
	}
	return nil
}

// ItemState is the status x condition product state an item occupies.
type ItemState struct {
	Status    Status
	Condition Condition
}

// ApplyMaintenanceEvent is the explicit transition table for maintenance
// logging. Damage events pull the item out of service; Resolved is the
// only event that returns it. Every other event leaves the state alone.
func ApplyMaintenanceEvent(cur ItemState, event MaintenanceType) ItemState {
	switch event {
	case MaintenanceBroken:
		return ItemState{Status: StatusUnderRepair, Condition: ConditionBroken}
	case MaintenanceRepairNeeded:
		return ItemState{Status: StatusUnderRepair, Condition: ConditionNeedsRepair}
	case MaintenanceResolved:
		return ItemState{Status: StatusAvailable, Condition: ConditionGood}
	default:
		return cur
	}
}

// ParseCost converts free-form cost input to a non-negative amount.
// Empty or unparseable input is 0; currency symbols and thousands
// separators are tolerated.
func ParseCost(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "₱$€£")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
