// Package mapping turns one order-form submission into an ERP order batch:
// it creates the parent sales order, then appends pencil, packaging,
// sharpener, language and fee lines according to the submitted answers.
package mapping

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pencilhq/orderform-gateway/internal/catalog"
	"github.com/pencilhq/orderform-gateway/internal/config"
	"github.com/pencilhq/orderform-gateway/internal/erp"
	"github.com/pencilhq/orderform-gateway/internal/forms"
)

// Flat fee prices attached to customization lines.
const (
	engravingFeePrice = 10.0
	packagingFeePrice = 15.0
)

// Multi-unit packaging items whose line quantity is the order quantity
// divided by the pack size. The division is deliberately not rounded.
var (
	packsOfThree = map[string]bool{"2100": true, "5240": true}
	packsOfFive  = map[string]bool{"2300": true, "5250": true}
)

// OrderCreator creates the parent sales order and returns its document
// number.
type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, order erp.SalesOrder) (string, error)
}

// Mapper is the order-line mapping core.
type Mapper struct {
	cfg *config.Config
	erp OrderCreator
	log *zap.Logger
}

// New returns a Mapper issuing parent-order calls through creator.
func New(cfg *config.Config, creator OrderCreator, log *zap.Logger) *Mapper {
	return &Mapper{cfg: cfg, erp: creator, log: log}
}

// MapItems fills the batch for one submission. The parent order is created
// first; every appended line carries its document number. Steps are strictly
// additive, and the fixed processing line is always last.
func (m *Mapper) MapItems(ctx context.Context, entry forms.Entry, batch *erp.OrderBatch, token string, quantity int) (*erp.OrderBatch, error) {
	ss, err := deriveSizeState(entry)
	if err != nil {
		return nil, err
	}
	variantKeys, err := classifyVariants(entry, ss)
	if err != nil {
		return nil, err
	}

	order, err := buildSalesOrder(entry, quantity, batch.CustomerNumber)
	if err != nil {
		return nil, err
	}
	documentNo, err := m.erp.CreateOrder(ctx, token, order)
	if err != nil {
		return nil, err
	}
	lineURL := m.cfg.ERP.LineURL()

	families := []struct {
		role  string
		seeds []catalog.Seed
	}{
		{roleGraphite, catalog.GraphiteSeeds},
		{roleColor, catalog.ColorSeeds},
		{roleMultiColor, catalog.MultiColorSeeds},
	}
	for _, fam := range families {
		key, ok := variantKeys[fam.role]
		if !ok {
			continue
		}
		if err := appendPencilLines(batch, entry, fam.seeds, key, ss.size, documentNo, lineURL); err != nil {
			return nil, err
		}
	}

	preference, err := entry.Field(forms.FieldPackagingPreference)
	if err != nil {
		return nil, err
	}
	if preference != forms.AnswerPencilsOnly && preference != "" && preference != " " {
		if err := appendPackagingLine(batch, entry, documentNo, quantity, lineURL); err != nil {
			return nil, err
		}
	}

	sharpener, err := entry.Field(forms.FieldSharpener)
	if err != nil {
		return nil, err
	}
	if sharpener != forms.AnswerNoSharpeners {
		if err := appendSharpenerLine(batch, entry, sharpener, documentNo, lineURL); err != nil {
			return nil, err
		}
	}

	if err := appendLanguageLine(batch, entry, documentNo, lineURL); err != nil {
		return nil, err
	}

	if err := m.appendFeeLines(batch, entry, documentNo, quantity, lineURL); err != nil {
		return nil, err
	}

	batch.Append(erp.NewItemLine(lineURL, documentNo, catalog.ItemOrderProcessing, 1))

	m.log.Info("submission mapped",
		zap.String("document_no", documentNo),
		zap.Int("quantity", quantity),
		zap.Int("lines", len(batch.Lines.Requests)))
	return batch, nil
}

// appendPackagingLine resolves the packaging item from the packaging option,
// customization flag and packaging language. Multi-unit pack items divide
// the order quantity without rounding; fractional quantities are passed on
// as-is.
func appendPackagingLine(batch *erp.OrderBatch, entry forms.Entry, documentNo string, quantity int, lineURL string) error {
	option, err := entry.Field(forms.FieldPackagingOption)
	if err != nil {
		return err
	}
	ptype, err := catalog.PackagingType(option)
	if err != nil {
		return err
	}

	custom, err := entry.Field(forms.FieldPackagingCustom)
	if err != nil {
		return err
	}
	flag := catalog.PackagingFlag(custom == forms.AnswerCustomPackaging)
	if option == forms.AnswerHangerTag {
		flag = catalog.PackagingFlag(false)
	}

	lang, err := entry.Field(forms.FieldPackagingLanguage)
	if err != nil {
		return err
	}
	if lang == "" {
		lang = forms.AnswerOtherLanguage
	}

	item, err := catalog.PackagingItem(fmt.Sprintf("%s %s %s", ptype, flag, lang))
	if err != nil {
		return err
	}

	qty := float64(quantity)
	switch {
	case packsOfThree[item]:
		qty = qty / 3
	case packsOfFive[item]:
		qty = qty / 5
	}

	batch.Append(erp.NewItemLine(lineURL, documentNo, item, qty))
	return nil
}

// appendSharpenerLine emits the sharpener line for the two known
// sub-options; any other answer yields no line.
func appendSharpenerLine(batch *erp.OrderBatch, entry forms.Entry, sharpener, documentNo, lineURL string) error {
	var item string
	switch sharpener {
	case forms.AnswerPlainSharpener:
		item = catalog.ItemSharpenerPlain
	case forms.AnswerPrintedSharpener:
		item = catalog.ItemSharpenerPrint
	default:
		return nil
	}

	qty, err := entry.Int(forms.FieldSharpenerQty)
	if err != nil {
		return err
	}
	batch.Append(erp.NewItemLine(lineURL, documentNo, item, float64(qty)))
	return nil
}

// appendLanguageLine always emits exactly one line: the stock item of the
// chosen language, or the generic custom-text item carrying the submitted
// free text.
func appendLanguageLine(batch *erp.OrderBatch, entry forms.Entry, documentNo, lineURL string) error {
	lang, err := entry.Field(forms.FieldLanguage)
	if err != nil {
		return err
	}

	if lang != forms.AnswerOtherLanguage && lang != "" {
		item, err := catalog.LanguageItem(lang)
		if err != nil {
			return err
		}
		batch.Append(erp.NewItemLine(lineURL, documentNo, item, 1))
		return nil
	}

	text, err := entry.Field(forms.FieldCustomText)
	if err != nil {
		return err
	}
	line := erp.NewItemLine(lineURL, documentNo, catalog.ItemCustomText, 1)
	line.Body.Description = text
	batch.Append(line)
	return nil
}

// appendFeeLines adds the flat customization fees and the per-unit
// color-print surcharge.
func (m *Mapper) appendFeeLines(batch *erp.OrderBatch, entry forms.Entry, documentNo string, quantity int, lineURL string) error {
	customization, err := entry.Field(forms.FieldCustomizationType)
	if err != nil {
		return err
	}
	packaging, err := entry.Field(forms.FieldPackagingCustom)
	if err != nil {
		return err
	}

	if customization == forms.AnswerLaserEngraved || customization == forms.AnswerCustomColorPrint {
		batch.Append(erp.NewFeeLine(lineURL, documentNo, catalog.ItemEngravingFee, 1, engravingFeePrice))
	}
	if packaging == forms.AnswerCustomPackaging {
		batch.Append(erp.NewFeeLine(lineURL, documentNo, catalog.ItemPackagingFee, 1, packagingFeePrice))
	}
	if customization == forms.AnswerCustomColorPrint || customization == forms.AnswerStandardColorPrint {
		batch.Append(erp.NewItemLine(lineURL, documentNo, catalog.ItemColorPrintRun, float64(quantity)))
	}
	return nil
}
