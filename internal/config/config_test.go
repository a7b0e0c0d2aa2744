package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testERP() ERPConfig {
	return ERPConfig{
		BaseURL:          "https://api.businesscentral.dynamics.com/v2.0",
		TenantID:         "tenant-1",
		TestEnvironment:  "Sandbox",
		ProdEnvironment:  "Production",
		Company:          "CRONUS",
		CustomerEndpoint: "Customer_List",
		OrderEndpoint:    "Sales_Order_Excel",
	}
}

func TestCustomersURLUsesProductionEnvironment(t *testing.T) {
	url := testERP().CustomersURL()
	assert.Contains(t, url, "/tenant-1/Production/ODataV4/CRONUS/Customer_List")
	assert.Contains(t, url, "$select=Blocked,No,VAT_Registration_No,Phone_No,Name,E_Mail")
}

func TestOrdersURLUsesTestEnvironment(t *testing.T) {
	assert.Equal(t,
		"https://api.businesscentral.dynamics.com/v2.0/tenant-1/Sandbox/ODataV4/CRONUS/Sales_Order_Excel",
		testERP().OrdersURL())
}

func TestLineURLIsCompanyRelative(t *testing.T) {
	assert.Equal(t, "CRONUS/Sales_Order_ExcelSalesLines", testERP().LineURL())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "2237", cfg.App.Port)
	assert.Equal(t, "Customer_List", cfg.ERP.CustomerEndpoint)
	assert.Equal(t, "Sales_Order_Excel", cfg.ERP.OrderEndpoint)
	assert.Equal(t, "info", cfg.Log.Level)
}
