package erp

import "github.com/google/uuid"

// Line type discriminator expected by the sales-line endpoint. Fees are
// items too; they differ only by carrying a unit price.
const lineTypeItem = "Item"

// LocationCode is the warehouse all order lines ship from.
const LocationCode = "PP"

// OrderBatch is the assembled result for one submission: order metadata,
// the customer, and the ordered sequence of sales-line requests the caller
// dispatches to the ERP batch endpoint. Lines are only ever appended.
type OrderBatch struct {
	Order          OrderMeta `json:"order"`
	Lines          LineSet   `json:"lines"`
	CustomerNumber string    `json:"customer_number"`
}

// OrderMeta carries order-level metadata.
type OrderMeta struct {
	TotalQuantity int `json:"Total Quantity"`
}

// LineSet wraps the request sequence.
type LineSet struct {
	Requests []LineRequest `json:"requests"`
}

// LineRequest is one self-contained REST call descriptor for the batch
// dispatcher. The id is a synthetic correlation id, unique per line.
type LineRequest struct {
	Method  string            `json:"method"`
	ID      string            `json:"id"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
	Body    LineBody          `json:"body"`
}

// LineBody is the sales-line payload. Quantity is a float because multi-unit
// packaging lines divide the order quantity without rounding.
type LineBody struct {
	DocumentNo   string  `json:"Document_No"`
	Type         string  `json:"Type"`
	No           string  `json:"No"`
	LocationCode string  `json:"Location_Code"`
	Quantity     float64 `json:"Quantity"`
	UnitPrice    float64 `json:"Unit_Price,omitempty"`
	Description  string  `json:"Description,omitempty"`
}

// NewBatch returns an empty batch shell for one submission.
func NewBatch(totalQuantity int, customerNo string) *OrderBatch {
	return &OrderBatch{
		Order:          OrderMeta{TotalQuantity: totalQuantity},
		Lines:          LineSet{Requests: []LineRequest{}},
		CustomerNumber: customerNo,
	}
}

// Append adds one line request to the batch.
func (b *OrderBatch) Append(line LineRequest) {
	b.Lines.Requests = append(b.Lines.Requests, line)
}

// NewItemLine builds a sales-line request for a plain item.
func NewItemLine(lineURL, documentNo, itemNo string, quantity float64) LineRequest {
	return LineRequest{
		Method:  "POST",
		ID:      uuid.NewString(),
		URL:     lineURL,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body: LineBody{
			DocumentNo:   documentNo,
			Type:         lineTypeItem,
			No:           itemNo,
			LocationCode: LocationCode,
			Quantity:     quantity,
		},
	}
}

// NewFeeLine builds a sales-line request carrying a fixed unit price.
func NewFeeLine(lineURL, documentNo, itemNo string, quantity, unitPrice float64) LineRequest {
	line := NewItemLine(lineURL, documentNo, itemNo, quantity)
	line.Body.UnitPrice = unitPrice
	return line
}
