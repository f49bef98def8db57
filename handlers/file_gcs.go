package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// maxUploadSize bounds item photos (10 MB).
const maxUploadSize = 10 << 20

// UploadPhotoGCS stores an item photo in the configured bucket under a
// random object name and returns its public URL. The caller stores the
// URL on the item record afterwards; if that insert fails the blob is
// orphaned, which we accept as a one-way leak.
func UploadPhotoGCS(w http.ResponseWriter, r *http.Request) {
	bucketName := os.Getenv("GCS_BUCKET")
	if bucketName == "" {
		http.Error(w, "GCS_BUCKET not configured", http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	ctx := r.Context()
	client, err := storage.NewClient(ctx)
	if err != nil {
		http.Error(w, "storage client: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer client.Close()

	// Random object name so uploads never collide or overwrite.
	objectName := "items/" + uuid.New().String() + filepath.Ext(header.Filename)

	obj := client.Bucket(bucketName).Object(objectName)
	writer := obj.NewWriter(ctx)
	writer.ContentType = header.Header.Get("Content-Type")

	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		http.Error(w, "failed to upload file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := writer.Close(); err != nil {
		http.Error(w, "failed to finalize upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"url":      url,
		"filename": objectName,
	})
}
