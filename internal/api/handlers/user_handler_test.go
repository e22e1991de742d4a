package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaharI12/PantryChef/config"
)

func googleHandlerWith(url string) *UserHandler {
	return &UserHandler{Cfg: config.Config{Google: config.GoogleConfig{
		TokenInfoURL: url,
		ClientID:     "client-1",
	}}}
}

// The ID token must travel in the POST body, never in the URL, so it cannot
// leak through server or proxy access logs.
func TestVerifyGoogleTokenPostsTokenInBody(t *testing.T) {
	var gotMethod, gotQuery, gotContentType, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		gotToken = r.PostFormValue("id_token")
		json.NewEncoder(w).Encode(map[string]string{
			"email":          "chef@example.com",
			"email_verified": "true",
			"name":           "Chef",
			"aud":            "client-1",
		})
	}))
	defer srv.Close()

	info, err := googleHandlerWith(srv.URL).verifyGoogleToken(context.Background(), "secret-token")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Empty(t, gotQuery)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, "chef@example.com", info.Email)
	assert.Equal(t, "Chef", info.Name)
}

func TestVerifyGoogleTokenRejections(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response map[string]string
	}{
		{
			name:     "rejected by google",
			status:   http.StatusBadRequest,
			response: map[string]string{"error": "invalid_token"},
		},
		{
			name:     "unverified email",
			status:   http.StatusOK,
			response: map[string]string{"email": "chef@example.com", "email_verified": "false", "aud": "client-1"},
		},
		{
			name:     "missing email",
			status:   http.StatusOK,
			response: map[string]string{"email_verified": "true", "aud": "client-1"},
		},
		{
			name:     "wrong audience",
			status:   http.StatusOK,
			response: map[string]string{"email": "chef@example.com", "email_verified": "true", "aud": "someone-else"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.response)
			}))
			defer srv.Close()

			_, err := googleHandlerWith(srv.URL).verifyGoogleToken(context.Background(), "some-token")
			assert.Error(t, err)
		})
	}
}
