package mapping

import (
	"regexp"

	"github.com/pencilhq/orderform-gateway/internal/catalog"
	"github.com/pencilhq/orderform-gateway/internal/erp"
	"github.com/pencilhq/orderform-gateway/internal/forms"
)

// ERP field-length limits. Ship-to city is tighter than sell-to city; the
// schemas genuinely differ.
const (
	maxAddressLen     = 99
	maxAddress2Len    = 49
	maxSellToCityLen  = 29
	maxShipToCityLen  = 20
	maxPostCodeLen    = 19
	maxRegionCodeLen  = 9
	maxExternalDocLen = 35
)

const orderStatusApproval = "19-APPROVAL"

var nonDigits = regexp.MustCompile(`\D`)

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}

func digitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// countryCode translates a country name, yielding an empty code for
// unmapped countries instead of failing.
func countryCode(name string) string {
	return clip(catalog.CountryCodes[name], maxRegionCodeLen)
}

// shipFieldKeys selects which submission fields feed the ship-to block.
type shipFieldKeys struct {
	address1, address2, city, postCode, country string
	contactFirst, contactLast, phone, company   string
}

var (
	// Delivery differs from the invoice address: the form's dedicated
	// delivery block.
	altShipKeys = shipFieldKeys{
		address1: forms.FieldShipAddress1, address2: forms.FieldShipAddress2,
		city: forms.FieldShipCity, postCode: forms.FieldShipPostCode,
		country:      forms.FieldShipCountry,
		contactFirst: forms.FieldShipContactFirstName, contactLast: forms.FieldShipContactLastName,
		phone: forms.FieldShipPhone, company: forms.FieldShipCompanyName,
	}
	// Default: ship-to mirrors the billing block.
	billShipKeys = shipFieldKeys{
		address1: forms.FieldBillAddress1, address2: forms.FieldBillAddress2,
		city: forms.FieldBillCity, postCode: forms.FieldBillPostCode,
		country:      forms.FieldBillCountry,
		contactFirst: forms.FieldContactFirstName, contactLast: forms.FieldContactLastName,
		phone: forms.FieldPhone, company: forms.FieldCompanyName,
	}
)

// fieldReader reads required fields and remembers the first failure, so the
// payload assembly below stays flat.
type fieldReader struct {
	entry forms.Entry
	err   error
}

func (r *fieldReader) get(key string) string {
	if r.err != nil {
		return ""
	}
	v, err := r.entry.Field(key)
	if err != nil {
		r.err = err
	}
	return v
}

// buildSalesOrder assembles the parent-order creation payload from the
// submission's contact and address fields.
func buildSalesOrder(entry forms.Entry, quantity int, customerNo string) (erp.SalesOrder, error) {
	r := &fieldReader{entry: entry}

	externalDoc := r.get(forms.FieldOrderReference)
	if externalDoc != "" {
		externalDoc = clip(externalDoc, maxExternalDocLen)
	} else {
		externalDoc = r.get(forms.FieldSubmissionID)
	}

	email := r.get(forms.FieldEmail)

	order := erp.SalesOrder{
		TotalQuantity:           quantity,
		StatusCode:              orderStatusApproval,
		SellToCustomerNo:        customerNo,
		SellToContact:           r.get(forms.FieldContactFirstName),
		ExternalDocumentNo:      externalDoc,
		SellToAddress:           clip(r.get(forms.FieldBillAddress1), maxAddressLen),
		SellToAddress2:          clip(r.get(forms.FieldBillAddress2), maxAddress2Len),
		SellToCity:              clip(r.get(forms.FieldBillCity), maxSellToCityLen),
		SellToPostCode:          clip(r.get(forms.FieldBillPostCode), maxPostCodeLen),
		SellToCountryRegionCode: countryCode(r.get(forms.FieldBillCountry)),
		SellToPhoneNo:           digitsOnly(r.get(forms.FieldPhone)),
		SellToEmail:             email,
		ShippingOptions:         "Custom Address",
		ShipToEmail:             email,
	}

	keys := billShipKeys
	if r.get(forms.FieldDeliveryDiffers) == forms.AnswerDifferentDelivery {
		keys = altShipKeys
	}

	order.ShipToAddress = clip(r.get(keys.address1), maxAddressLen)
	order.ShipToAddress2 = clip(r.get(keys.address2), maxAddress2Len)
	order.ShipToCity = clip(r.get(keys.city), maxShipToCityLen)
	order.ShipToPostCode = clip(r.get(keys.postCode), maxPostCodeLen)
	order.ShipToCountryRegionCode = countryCode(r.get(keys.country))
	order.ShipToContact = r.get(keys.contactFirst) + " " + r.get(keys.contactLast)
	order.ShipToPhoneNo = digitsOnly(r.get(keys.phone))
	order.ShipToName = r.get(keys.company)

	if r.err != nil {
		return erp.SalesOrder{}, r.err
	}
	return order, nil
}
