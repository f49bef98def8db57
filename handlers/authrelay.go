package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/parishworks/steward/pkg/authgw"
)

// AuthProvider is the slice of the managed auth service the relay
// forwards to.
type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (json.RawMessage, error)
	SendMagicLink(ctx context.Context, email string) (json.RawMessage, error)
}

// AuthGateway is set at startup from SUPABASE_URL and
// SUPABASE_SERVICE_ROLE_KEY. Tests swap in a fake.
var AuthGateway AuthProvider

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// RelaySignIn forwards an email+password sign-in to the auth provider
// and passes its session payload (or rejection) through. Validation
// failures never reach the provider.
func RelaySignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "email and password required")
		return
	}

	payload, err := AuthGateway.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		var pErr *authgw.ProviderError
		if errors.As(err, &pErr) {
			writeJSONError(w, http.StatusUnauthorized, pErr.Message)
			return
		}
		log.Println("signin relay:", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// RelayMagicLink forwards a magic-link request to the auth provider.
func RelayMagicLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Email == "" {
		writeJSONError(w, http.StatusBadRequest, "email required")
		return
	}

	payload, err := AuthGateway.SendMagicLink(r.Context(), req.Email)
	if err != nil {
		var pErr *authgw.ProviderError
		if errors.As(err, &pErr) {
			writeJSONError(w, http.StatusBadRequest, pErr.Message)
			return
		}
		log.Println("magic-link relay:", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
