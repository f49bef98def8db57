package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/parishworks/steward/models"
)

// RunAllSeeding runs all seeding operations in order. Each step skips
// itself when data already exists.
func RunAllSeeding() error {
	log.Println("=== Starting Database Seeding ===")

	log.Println("[1/2] Seeding Default Admin...")
	if err := SeedAdminUser(); err != nil {
		return err
	}

	log.Println("[2/2] Seeding Starter Inventory...")
	if err := SeedInventory(); err != nil {
		return err
	}

	log.Println("=== Database Seeding Complete ===")
	return nil
}

// SeedAdminUser creates the bootstrap admin account when no user exists.
func SeedAdminUser() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Users already present, skipping")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("ADMIN_PASSWORD not set, using default (change it!)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        "admin@church.local",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	return DB.Create(&admin).Error
}

// SeedInventory loads a handful of starter items so a fresh install does
// not greet the team with an empty dashboard.
func SeedInventory() error {
	var count int64
	if err := DB.Model(&models.InventoryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Inventory already present, skipping")
		return nil
	}

	brand := func(s string) *string { return &s }

	items := []models.InventoryItem{
		{Name: "Shure SM58 Microphone", Category: "Audio", Quantity: 4, Status: models.StatusInUse, Condition: models.ConditionGood, Brand: brand("Shure"), Model: brand("SM58"), Location: brand("Stage Left")},
		{Name: "XLR Cable (20ft)", Category: "Cables", Quantity: 12, Status: models.StatusAvailable, Condition: models.ConditionNew, Location: brand("Cable Bin A")},
		{Name: "Yamaha Acoustic Guitar", Category: "Instruments", Quantity: 1, Status: models.StatusUnderRepair, Condition: models.ConditionFair, Brand: brand("Yamaha"), Model: brand("F310"), Location: brand("Instrument Storage")},
		{Name: "HDMI Splitter", Category: "Video", Quantity: 2, Status: models.StatusAvailable, Condition: models.ConditionGood, Location: brand("Media Booth")},
		{Name: "DMX Controller", Category: "Lighting", Quantity: 1, Status: models.StatusAvailable, Condition: models.ConditionGood},
	}
	return DB.Create(&items).Error
}
