package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/parishworks/steward/config"
	"github.com/parishworks/steward/handlers"
	"github.com/parishworks/steward/pkg/authgw"
	"github.com/parishworks/steward/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	seedFlag := flag.Bool("seed", false, "Seed default admin and starter inventory")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	config.Connect()

	if *seedFlag {
		if err := config.RunAllSeeding(); err != nil {
			log.Printf("Warning: seeding encountered issues: %v", err)
		}
	}

	authURL := os.Getenv("SUPABASE_URL")
	authKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if authURL == "" || authKey == "" {
		log.Fatal("Missing SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY")
	}
	handlers.AuthGateway = authgw.NewClient(authURL, authKey)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := routes.RegisterRoutes()
	handlerWithCORS := enableCORS(handler)
	log.Println("Server starting at port", port)
	log.Fatal(http.ListenAndServe(":"+port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
