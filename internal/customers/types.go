package customers

// Customer is the ERP customer record as returned by the OData customer
// query. Read-only in this service.
type Customer struct {
	No                string `json:"No"`
	Name              string `json:"Name"`
	VATRegistrationNo string `json:"VAT_Registration_No"`
	PhoneNo           string `json:"Phone_No"`
	Email             string `json:"E_Mail"`
	Blocked           string `json:"Blocked"`
}

// Option is one matched customer offered back to the form as a dropdown
// choice.
type Option struct {
	Title string `json:"title"`
	Value string `json:"value"`
}
