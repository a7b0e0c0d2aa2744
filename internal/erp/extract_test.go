package erp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractOrderBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []interface{}{map[string]interface{}{"id": "subm-1"}},
		})
	}))
	defer srv.Close()

	data := ExtractOrderBatch(context.Background(), "key", "secret", srv.URL, zap.NewNop())
	require.NotNil(t, data)
	assert.Contains(t, data, "content")
}

func TestExtractOrderBatchRejectedYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Nil(t, ExtractOrderBatch(context.Background(), "key", "bad", srv.URL, zap.NewNop()))
}
