package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parishworks/steward/handlers"
	"github.com/parishworks/steward/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")

	// Auth relay: forwards to the managed auth provider
	r.HandleFunc("/api/signin", handlers.RelaySignIn).Methods("POST")
	r.HandleFunc("/api/magic-link", handlers.RelayMagicLink).Methods("POST")

	// Locally stored item photos
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)
	api.Use(middleware.LoggingMiddleware)

	api.HandleFunc("/me", handlers.GetCurrentUser).Methods("GET")

	// Inventory
	api.HandleFunc("/items", handlers.GetAllItems).Methods("GET")
	api.HandleFunc("/items", handlers.CreateItem).Methods("POST")
	api.HandleFunc("/items/{id}", handlers.GetItem).Methods("GET")
	api.HandleFunc("/items/{id}", handlers.UpdateItem).Methods("PUT")
	api.HandleFunc("/items/{id}", handlers.DeleteItem).Methods("DELETE")
	api.HandleFunc("/items/{id}/resolve", handlers.ResolveItem).Methods("POST")

	// Maintenance
	api.HandleFunc("/maintenance", handlers.LogMaintenanceIssue).Methods("POST")
	api.HandleFunc("/maintenance/recent", handlers.GetRecentMaintenance).Methods("GET")
	api.HandleFunc("/items/{id}/maintenance", handlers.GetItemMaintenanceHistory).Methods("GET")

	// Acquisitions
	api.HandleFunc("/items/{id}/acquisitions", handlers.GetItemAcquisitions).Methods("GET")
	api.HandleFunc("/items/{id}/acquisitions", handlers.CreateItemAcquisition).Methods("POST")

	// Reports
	api.HandleFunc("/reports/snapshot", handlers.GetReportSnapshot).Methods("GET")
	api.HandleFunc("/reports/export/excel", handlers.ExportInventoryToExcel).Methods("GET")
	api.HandleFunc("/reports/export/csv", handlers.ExportInventoryToCSV).Methods("GET")

	// Photo upload
	api.HandleFunc("/upload", handlers.UploadPhotoHandler).Methods("POST")

	return r
}
