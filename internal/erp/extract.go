package erp

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ExtractOrderBatch fetches one page of orders from the external order-intake
// system using basic-auth credentials. Failures are logged; a nil result is
// the only failure signal.
func ExtractOrderBatch(ctx context.Context, clientKey, clientSecret, ordersURL string, log *zap.Logger) map[string]interface{} {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ordersURL, nil)
	if err != nil {
		log.Error("building intake request failed", zap.Error(err))
		return nil
	}
	req.SetBasicAuth(clientKey, clientSecret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error("intake request failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("intake request rejected", zap.Int("status", resp.StatusCode))
		return nil
	}

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Error("decoding intake response failed", zap.Error(err))
		return nil
	}

	log.Info("intake page accessed", zap.Int("status", resp.StatusCode))
	return data
}
