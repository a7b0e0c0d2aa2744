package validation

import (
	"github.com/pencilhq/orderform-gateway/internal/customers"
	"github.com/pencilhq/orderform-gateway/internal/forms"
)

// TokenRequest is the payload for POST /retrieve_ac.
type TokenRequest struct {
	BCID string `json:"bc_id" validate:"required"` // business-center client id
}

// CustomersRequest is the payload for POST /get_customers. The customer list
// is supplied by the caller, already fetched from the ERP.
type CustomersRequest struct {
	Entry       forms.Entry          `json:"entry" validate:"required"`
	AccessToken string               `json:"ac"`
	Customers   []customers.Customer `json:"customers"`
}

// NewOrderRequest is the payload for POST /newOrders.
type NewOrderRequest struct {
	Entry       forms.Entry `json:"entry" validate:"required"`
	AccessToken string      `json:"ac" validate:"required"`
	CustomerNo  string      `json:"customer_no" validate:"required"`
}
