package erp

// SalesOrder is the sales-order creation payload. Field names follow the
// ERP's OData schema, including its PTE_ extension fields.
type SalesOrder struct {
	TotalQuantity           int    `json:"PTE_Total_Quantity"`
	StatusCode              string `json:"PTE_Status_Code"`
	SellToCustomerNo        string `json:"Sell_to_Customer_No"`
	SellToContact           string `json:"Sell_to_Contact"`
	ExternalDocumentNo      string `json:"External_Document_No"`
	SellToAddress           string `json:"Sell_to_Address"`
	SellToAddress2          string `json:"Sell_to_Address_2"`
	SellToCity              string `json:"Sell_to_City"`
	SellToPostCode          string `json:"Sell_to_Post_Code"`
	SellToCountryRegionCode string `json:"Sell_to_Country_Region_Code"`
	SellToPhoneNo           string `json:"Sell_to_Phone_No"`
	SellToEmail             string `json:"Sell_to_E_Mail"`
	ShippingOptions         string `json:"ShippingOptions"`
	ShipToEmail             string `json:"PTE_Ship_to_Email"`
	ShipToAddress           string `json:"Ship_to_Address"`
	ShipToAddress2          string `json:"Ship_to_Address_2"`
	ShipToCity              string `json:"Ship_to_City"`
	ShipToPostCode          string `json:"Ship_to_Post_Code"`
	ShipToCountryRegionCode string `json:"Ship_to_Country_Region_Code"`
	ShipToContact           string `json:"Ship_to_Contact"`
	ShipToPhoneNo           string `json:"PTE_Ship_to_Phone_No"`
	ShipToName              string `json:"Ship_to_Name"`
}
