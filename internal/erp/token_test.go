package erp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/pencilhq/orderform-gateway/internal/config"
)

func TestRetrieveToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		clientID := r.PostFormValue("client_id")
		if clientID == "" {
			clientID, _, _ = r.BasicAuth()
		}
		if clientID != "bc-client" {
			http.Error(w, "unknown client", http.StatusUnauthorized)
			return
		}
		if gt := r.PostFormValue("grant_type"); gt != "client_credentials" {
			http.Error(w, "unsupported grant "+gt, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "bearer-abc",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	p := NewTokenProvider(config.OAuthConfig{
		TokenURL:     srv.URL,
		Scope:        "erp/.default",
		ClientSecret: "shh",
	}, zap.NewNop())

	assert.Equal(t, "bearer-abc", p.Retrieve(context.Background(), "bc-client"))
}

func TestRetrieveTokenFailureYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_client", http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewTokenProvider(config.OAuthConfig{TokenURL: srv.URL}, zap.NewNop())
	assert.Equal(t, "", p.Retrieve(context.Background(), "bc-client"))
}
