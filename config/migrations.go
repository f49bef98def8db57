package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/parishworks/steward/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.InventoryItem{},
					&models.MaintenanceRecord{}, &models.AcquisitionRecord{})
			},
		},
		{
			ID: "20250819_backfill_item_condition",
			Migrate: func(tx *gorm.DB) error {
				// Rows imported from the old spreadsheet have no condition.
				return tx.Exec("UPDATE inventory_items SET condition = ? WHERE condition IS NULL OR condition = ''",
					string(models.ConditionGood)).Error
			},
		},
		{
			ID: "20250826_index_maintenance_date",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_maintenance_item_date ON inventory_item_maintenance (item_id, maintenance_date DESC)").Error
			},
		},
	})

	return m.Migrate()
}
