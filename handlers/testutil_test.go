package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/parishworks/steward/config"
	"github.com/parishworks/steward/models"
)

// setupTestDB points the package-global DB at a fresh in-memory sqlite
// database. Shared cache keeps the pool's connections on one database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.MaintenanceRecord{},
		&models.AcquisitionRecord{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// newAPIRouter wires the handlers under test the way routes.RegisterRoutes
// does, minus the auth middleware.
func newAPIRouter() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/items", GetAllItems).Methods("GET")
	api.HandleFunc("/items", CreateItem).Methods("POST")
	api.HandleFunc("/items/{id}", GetItem).Methods("GET")
	api.HandleFunc("/items/{id}", UpdateItem).Methods("PUT")
	api.HandleFunc("/items/{id}", DeleteItem).Methods("DELETE")
	api.HandleFunc("/items/{id}/resolve", ResolveItem).Methods("POST")
	api.HandleFunc("/maintenance", LogMaintenanceIssue).Methods("POST")
	api.HandleFunc("/maintenance/recent", GetRecentMaintenance).Methods("GET")
	api.HandleFunc("/items/{id}/maintenance", GetItemMaintenanceHistory).Methods("GET")
	api.HandleFunc("/items/{id}/acquisitions", GetItemAcquisitions).Methods("GET")
	api.HandleFunc("/items/{id}/acquisitions", CreateItemAcquisition).Methods("POST")
	api.HandleFunc("/reports/snapshot", GetReportSnapshot).Methods("GET")
	api.HandleFunc("/reports/export/csv", ExportInventoryToCSV).Methods("GET")

	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedItem(t *testing.T, db *gorm.DB, item models.InventoryItem) models.InventoryItem {
	t.Helper()
	require.NoError(t, db.Create(&item).Error)
	return item
}

func jtDate(t *testing.T, s string) models.JSONTime {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return models.JSONTime(parsed)
}

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
