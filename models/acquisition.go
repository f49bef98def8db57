package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcquisitionRecord captures what was paid for an item. Prices feed the
// total-asset-value figure on the reports page.
type AcquisitionRecord struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"     json:"id"`
	ItemID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"itemId"`
	Item       *InventoryItem `gorm:"foreignKey:ItemID"        json:"item,omitempty"`
	Price      float64        `gorm:"not null"                 json:"price"`
	Vendor     *string        `gorm:"size:255"                 json:"vendor,omitempty"`
	AcquiredAt JSONTime       `gorm:"not null"                 json:"acquiredAt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AcquisitionRecord) TableName() string { return "inventory_item_acquisitions" }

func (a *AcquisitionRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.ItemID == uuid.Nil {
		return ErrMissingItemRef
	}
	if a.Price < 0 {
		return ErrNegativeCost
	}
	if time.Time(a.AcquiredAt).IsZero() {
		a.AcquiredAt = JSONTime(time.Now())
	}
	return nil
}
