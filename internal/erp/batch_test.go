package erp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRequestShape(t *testing.T) {
	line := NewItemLine("CRONUS/Sales_Order_ExcelSalesLines", "SO-1001", "1001", 6)

	assert.Equal(t, "POST", line.Method)
	assert.NotEmpty(t, line.ID)
	assert.Equal(t, "application/json", line.Headers["Content-Type"])
	assert.Equal(t, "Item", line.Body.Type)
	assert.Equal(t, "PP", line.Body.LocationCode)

	other := NewItemLine("CRONUS/Sales_Order_ExcelSalesLines", "SO-1001", "1001", 6)
	assert.NotEqual(t, line.ID, other.ID)
}

func TestBatchJSONKeys(t *testing.T) {
	batch := NewBatch(10, "C00010")
	batch.Append(NewItemLine("url", "SO-1", "2100", 10.0/3.0))
	batch.Append(NewFeeLine("url", "SO-1", "625", 1, 10))

	raw, err := json.Marshal(batch)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	order := decoded["order"].(map[string]interface{})
	assert.Equal(t, 10.0, order["Total Quantity"])
	assert.Equal(t, "C00010", decoded["customer_number"])

	reqs := decoded["lines"].(map[string]interface{})["requests"].([]interface{})
	require.Len(t, reqs, 2)

	first := reqs[0].(map[string]interface{})["body"].(map[string]interface{})
	assert.Equal(t, "SO-1", first["Document_No"])
	assert.InDelta(t, 10.0/3.0, first["Quantity"].(float64), 1e-12)
	// plain items omit the unit price entirely
	_, hasPrice := first["Unit_Price"]
	assert.False(t, hasPrice)

	second := reqs[1].(map[string]interface{})["body"].(map[string]interface{})
	assert.Equal(t, 10.0, second["Unit_Price"])
}
