package mapping

import (
	"fmt"

	"github.com/pencilhq/orderform-gateway/internal/catalog"
	"github.com/pencilhq/orderform-gateway/internal/erp"
	"github.com/pencilhq/orderform-gateway/internal/forms"
)

// Size and state tokens of a variant key.
const (
	sizeNormal = "normal"
	sizeMini   = "mini"
	stateSharp = "sp"
	stateUp    = "up"
)

type sizeState struct {
	size  string
	state string
}

// deriveSizeState classifies the packaging option into the size and state
// tokens of the variant key. Mini formats force an unsharpened state;
// multi-packs force sharpened; otherwise the raw state answer decides,
// defaulting to sharpened when blank.
func deriveSizeState(entry forms.Entry) (sizeState, error) {
	option, err := entry.Field(forms.FieldPackagingOption)
	if err != nil {
		return sizeState{}, err
	}

	switch option {
	case forms.AnswerMiniSingleCard, forms.AnswerHangerTag:
		return sizeState{size: sizeMini, state: stateUp}, nil
	case forms.AnswerThreePack, forms.AnswerFivePack:
		return sizeState{size: sizeNormal, state: stateSharp}, nil
	default:
		raw, err := entry.Field(forms.FieldPencilState)
		if err != nil {
			return sizeState{}, err
		}
		if raw == "" {
			return sizeState{size: sizeNormal, state: stateSharp}, nil
		}
		state, err := catalog.PencilState(raw)
		if err != nil {
			return sizeState{}, err
		}
		return sizeState{size: sizeNormal, state: state}, nil
	}
}

// Pencil family roles threading derived variant keys between classification
// and batch generation within one submission.
const (
	roleGraphite   = "graphite"
	roleColor      = "color"
	roleMultiColor = "multicolor"
)

// classifyVariants composes the per-family composite lookup keys for every
// family present in the submission. Personalization and mini sizes override
// the language-specific stock variants; multi-color pencils always use the
// generic language and sharpened state.
func classifyVariants(entry forms.Entry, ss sizeState) (map[string]string, error) {
	customization, err := entry.Field(forms.FieldCustomizationType)
	if err != nil {
		return nil, err
	}
	lang, err := entry.Field(forms.FieldLanguage)
	if err != nil {
		return nil, err
	}

	personalized := customization == forms.AnswerLaserEngraved ||
		customization == forms.AnswerCustomColorPrint
	prefix := catalog.PersonalizationPrefix(personalized)

	stockLang := lang
	if personalized || ss.size == sizeMini {
		stockLang = forms.AnswerOtherLanguage
	}

	keys := make(map[string]string)

	graphite, err := entry.Field(forms.FieldGraphiteQty)
	if err != nil {
		return nil, err
	}
	if graphite != "" {
		keys[roleGraphite] = fmt.Sprintf("%s %s %s", prefix, ss.state, stockLang)
	}

	color, err := entry.Field(forms.FieldColorQty)
	if err != nil {
		return nil, err
	}
	if color != "" {
		keys[roleColor] = fmt.Sprintf("%s %s %s", prefix, stateSharp, stockLang)
	}

	multi, err := entry.Field(forms.FieldMultiColorQty)
	if err != nil {
		return nil, err
	}
	if multi != "" {
		keys[roleMultiColor] = fmt.Sprintf("%s %s %s", prefix, stateSharp, forms.AnswerOtherLanguage)
	}

	return keys, nil
}

// appendPencilLines emits one line per sub-variant seed with a non-empty
// submitted quantity, resolving the full composite key against the variant
// table. An absent combination is a fatal lookup error.
func appendPencilLines(batch *erp.OrderBatch, entry forms.Entry, seeds []catalog.Seed, variantKey, size, documentNo, lineURL string) error {
	for _, seed := range seeds {
		raw, err := entry.Field(seed.Field)
		if err != nil {
			return err
		}
		if raw == "" {
			continue
		}
		qty, err := entry.Int(seed.Field)
		if err != nil {
			return err
		}
		item, err := catalog.Variant(fmt.Sprintf("%s %s %s", variantKey, seed.Pack, size))
		if err != nil {
			return err
		}
		batch.Append(erp.NewItemLine(lineURL, documentNo, item, float64(qty)))
	}
	return nil
}
