// Package erp drives the Business Central OData API: sales-order creation,
// customer queries, the OAuth token exchange, and the order-intake
// extraction utility.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pencilhq/orderform-gateway/internal/config"
	"github.com/pencilhq/orderform-gateway/internal/customers"
)

// Client issues blocking REST calls against the ERP. All calls are
// synchronous; there is no retry.
type Client struct {
	cfg  config.ERPConfig
	http *http.Client
	log  *zap.Logger
}

// NewClient returns a Client bound to the configured ERP endpoints.
func NewClient(cfg config.ERPConfig, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  log,
	}
}

// CreateOrder creates the parent sales order and returns the ERP-assigned
// document number every subsequent line request must carry.
func (c *Client) CreateOrder(ctx context.Context, token string, order SalesOrder) (string, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("marshal sales order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OrdersURL(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("create order: status %d: %s", resp.StatusCode, body)
	}

	var created struct {
		No string `json:"No"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	if created.No == "" {
		return "", fmt.Errorf("create order: response carries no document number")
	}

	c.log.Info("sales order created", zap.String("document_no", created.No))
	return created.No, nil
}

// FetchCustomers retrieves the customer page and drops blocked records.
func (c *Client) FetchCustomers(ctx context.Context, token string) ([]customers.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.CustomersURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("build customer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch customers: status %d: %s", resp.StatusCode, body)
	}

	var page struct {
		Value []customers.Customer `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode customer page: %w", err)
	}

	return customers.FilterBlocked(page.Value), nil
}
