package mapping

import "github.com/pencilhq/orderform-gateway/internal/forms"

// DeriveQuantity computes the order's total quantity. A non-zero explicit
// total wins; otherwise the three family quantities are summed, blank fields
// counting as zero.
func DeriveQuantity(entry forms.Entry) (int, error) {
	graphite, err := entry.IntOrZero(forms.FieldGraphiteQty)
	if err != nil {
		return 0, err
	}
	color, err := entry.IntOrZero(forms.FieldColorQty)
	if err != nil {
		return 0, err
	}
	multi, err := entry.IntOrZero(forms.FieldMultiColorQty)
	if err != nil {
		return 0, err
	}
	total, err := entry.IntOrZero(forms.FieldTotalQty)
	if err != nil {
		return 0, err
	}

	if total != 0 {
		return total, nil
	}
	return graphite + color + multi, nil
}
