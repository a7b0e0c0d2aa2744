package validation

import (
	"strconv"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/pencilhq/orderform-gateway/internal/forms"
)

// New returns a configured validator with custom struct-level validation
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// quantity fields must be blank or integral before the mapper runs
	v.RegisterStructValidation(newOrderStructValidation, NewOrderRequest{})

	return v
}

var quantityFields = []string{
	forms.FieldGraphiteQty,
	forms.FieldColorQty,
	forms.FieldMultiColorQty,
	forms.FieldTotalQty,
}

func newOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(NewOrderRequest)

	for _, key := range quantityFields {
		v := req.Entry.Opt(key)
		if v == "" {
			continue
		}
		if _, err := strconv.Atoi(v); err != nil {
			sl.ReportError(req.Entry, "entry", "Entry", "quantity_numeric", key)
		}
	}
}
