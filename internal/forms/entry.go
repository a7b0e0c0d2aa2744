// Package forms gives typed access to raw order-form submissions. The form
// builder addresses every answer by a numeric field id, so an entry arrives
// as a flat string-to-string mapping; the constants below are the full set
// of field ids this service recognizes.
package forms

import (
	"errors"
	"fmt"
	"strconv"
)

// Field ids as assigned by the form builder.
const (
	FieldCustomizationType    = "7"     // laser engraving / color print / standard
	FieldGraphiteQty          = "23"    // graphite pencil quantity
	FieldColorQty             = "24"    // color pencil quantity
	FieldTotalQty             = "25"    // explicit total quantity, wins over the sum
	FieldGraphiteHB           = "26"    // graphite HB sub-variant quantity
	FieldGraphite2B           = "27"    // graphite 2B sub-variant quantity
	FieldPencilState          = "28"    // sharpened / unsharpened
	FieldGraphite2H           = "29"    // graphite 2H sub-variant quantity
	FieldLanguage             = "30"    // imprint language
	FieldColor6Pack           = "33"    // color 6-assortment quantity
	FieldColor12Pack          = "34"    // color 12-assortment quantity
	FieldCompanyName          = "86"
	FieldBillAddress1         = "87.1"
	FieldBillAddress2         = "87.2"
	FieldBillCity             = "87.3"
	FieldBillPostCode         = "87.5"
	FieldBillCountry          = "87.6"
	FieldEmail                = "88"
	FieldContactFirstName     = "89.3"
	FieldContactLastName      = "89.6"
	FieldShipCompanyName      = "94"
	FieldShipAddress1         = "95.1"
	FieldShipAddress2         = "95.2"
	FieldShipCity             = "95.3"
	FieldShipPostCode         = "95.5"
	FieldShipCountry          = "95.6"
	FieldShipContactFirstName = "96.3"
	FieldShipContactLastName  = "96.6"
	FieldShipPhone            = "97"
	FieldPackagingCustom      = "111"   // packaging customization choice
	FieldPackagingPreference  = "119"   // packaging included vs pencils only
	FieldPackagingOption      = "121"   // card / hanger tag / multi-pack style
	FieldOrderReference       = "125"   // customer purchase-order reference
	FieldVATNumber            = "138"
	FieldDeliveryDiffers      = "139.1" // alternate delivery address flag
	FieldMultiColorQty        = "152"   // multi-color pencil quantity
	FieldMultiColor4in1       = "154"   // multi-color 4-in-1 sub-variant quantity
	FieldPackagingLanguage    = "153"
	FieldSharpener            = "233"
	FieldSharpenerQty         = "238"
	FieldCustomText           = "248"   // free text printed when no stock language fits
	FieldPhone                = "307"
	FieldSubmissionID         = "id"    // form-builder internal submission id
)

// Answer sentinels the mapper branches on. These are the literal strings the
// form emits, compared verbatim.
const (
	AnswerLaserEngraved      = "Customized laser engraved"
	AnswerCustomColorPrint   = "Customized color print"
	AnswerStandardColorPrint = "Standard color print"
	AnswerCustomPackaging    = "Customized packaging (Your own design)"
	AnswerPencilsOnly        = "Pencils only"
	AnswerNoSharpeners       = "No thanks not this time"
	AnswerPlainSharpener     = "Standard ( plain )"
	AnswerPrintedSharpener   = "Customized with color print"
	AnswerDifferentDelivery  = "Delivery address is different from invoice"
	AnswerMiniSingleCard     = "Mini Single Card"
	AnswerHangerTag          = "Hanger Tag"
	AnswerThreePack          = "3-Pack"
	AnswerFivePack           = "5-Pack"
	AnswerOtherLanguage      = "Other"
)

var (
	// ErrFieldMissing reports a field id absent from the submission.
	ErrFieldMissing = errors.New("forms: field missing")
	// ErrFieldNotNumeric reports a quantity field that does not parse.
	ErrFieldNotNumeric = errors.New("forms: field not numeric")
)

// Entry is one order-form submission keyed by field id.
type Entry map[string]string

// Field returns the value of a required field. Absence is a declared error,
// not a silent empty string.
func (e Entry) Field(key string) (string, error) {
	v, ok := e[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFieldMissing, key)
	}
	return v, nil
}

// Opt returns the value of an optional field, empty when absent.
func (e Entry) Opt(key string) string {
	return e[key]
}

// Int parses a required numeric field.
func (e Entry) Int(key string) (int, error) {
	v, err := e.Field(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q=%q", ErrFieldNotNumeric, key, v)
	}
	return n, nil
}

// IntOrZero parses a quantity field, treating an absent or empty value as
// zero.
func (e Entry) IntOrZero(key string) (int, error) {
	v := e[key]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q=%q", ErrFieldNotNumeric, key, v)
	}
	return n, nil
}
