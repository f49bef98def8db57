package authgw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInWithPasswordSendsServiceKey(t *testing.T) {
	var gotPath, gotAPIKey, gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"access_token":"abc"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")
	payload, err := c.SignInWithPassword(context.Background(), "pastor@church.local", "secret")

	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"abc"}`, string(payload))
	assert.Equal(t, "/auth/v1/token?grant_type=password", gotPath)
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "pastor@church.local", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
}

func TestSignInWithPasswordRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")
	_, err := c.SignInWithPassword(context.Background(), "pastor@church.local", "wrong")

	var pErr *ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, http.StatusBadRequest, pErr.StatusCode)
	assert.Equal(t, "Invalid login credentials", pErr.Message)
}

func TestSendMagicLinkCreatesUser(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")
	_, err := c.SendMagicLink(context.Background(), "guest@example.com")

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", gotBody["email"])
	assert.Equal(t, true, gotBody["create_user"])
}

func TestProviderMessageShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"msg field", `{"msg":"Signups not allowed for otp"}`, "Signups not allowed for otp"},
		{"message field", `{"message":"over quota"}`, "over quota"},
		{"error field", `{"error":"invalid_grant"}`, "invalid_grant"},
		{"unparseable body", `<html>`, "Unprocessable Entity"},
		{"empty object", `{}`, "Unprocessable Entity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := providerMessage([]byte(tc.body), http.StatusUnprocessableEntity)
			assert.Equal(t, tc.want, got)
		})
	}
}
