package validation

import (
	"testing"

	"github.com/pencilhq/orderform-gateway/internal/forms"
)

func TestNewOrderRequest_Valid(t *testing.T) {
	v := New()

	req := NewOrderRequest{
		Entry: forms.Entry{
			forms.FieldGraphiteQty: "3",
			forms.FieldColorQty:    "",
			forms.FieldTotalQty:    "10",
		},
		AccessToken: "tok",
		CustomerNo:  "C00010",
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestNewOrderRequest_MissingFields(t *testing.T) {
	v := New()

	req := NewOrderRequest{
		Entry: forms.Entry{forms.FieldGraphiteQty: "3"},
		// AccessToken and CustomerNo missing
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func TestNewOrderRequest_NonNumericQuantity(t *testing.T) {
	v := New()

	req := NewOrderRequest{
		Entry: forms.Entry{
			forms.FieldGraphiteQty: "lots",
		},
		AccessToken: "tok",
		CustomerNo:  "C00010",
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for non-numeric quantity, got nil")
	}
}

func TestTokenRequest_Required(t *testing.T) {
	v := New()

	if err := v.Struct(TokenRequest{}); err == nil {
		t.Fatal("expected validation error for missing bc_id, got nil")
	}
	if err := v.Struct(TokenRequest{BCID: "bc-1"}); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}
