package handlers

import (
	"net/http"
	"os"
)

// UploadPhotoHandler routes to the appropriate upload backend based on
// environment. Cloud Run and anything with GCS credentials gets the
// bucket; local development writes to ./uploads.
func UploadPhotoHandler(w http.ResponseWriter, r *http.Request) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != "" // Cloud Run indicator

	if useGCS {
		UploadPhotoGCS(w, r)
	} else {
		UploadPhotoLocal(w, r)
	}
}
