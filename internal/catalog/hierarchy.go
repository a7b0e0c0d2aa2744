// Package catalog holds the static product catalog: label-to-code tables
// loaded once at startup and never mutated. Variant keys are composed as
// "<prefix> <state> <language>" and resolved against the combined variant
// table together with a sub-variant pack label and a size.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant reports a composite variant key absent from the table.
	ErrUnknownVariant = errors.New("catalog: unknown variant key")
	// ErrUnknownPackaging reports a packaging label or key absent from the table.
	ErrUnknownPackaging = errors.New("catalog: unknown packaging key")
	// ErrUnknownState reports a pencil state label absent from the table.
	ErrUnknownState = errors.New("catalog: unknown pencil state")
	// ErrUnknownLanguage reports an imprint language without a stock item.
	ErrUnknownLanguage = errors.New("catalog: unknown language")
)

var personalizationPrefix = map[bool]string{
	true:  "pers",
	false: "std",
}

// PersonalizationPrefix returns the variant-key prefix for personalized or
// standard stock.
func PersonalizationPrefix(personalized bool) string {
	return personalizationPrefix[personalized]
}

var pencilStates = map[string]string{
	"Sharpened":   "sp",
	"Unsharpened": "up",
}

// PencilState translates the raw state answer into the variant-key state
// token.
func PencilState(label string) (string, error) {
	s, ok := pencilStates[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, label)
	}
	return s, nil
}

// Seed binds a quantity field id to the pack label used in variant lookups.
// Seeds are ordered slices so line emission stays deterministic.
type Seed struct {
	Field string
	Pack  string
}

// Sub-variant seeds per pencil family.
var (
	GraphiteSeeds = []Seed{
		{Field: "26", Pack: "HB"},
		{Field: "27", Pack: "2B"},
		{Field: "29", Pack: "2H"},
	}
	ColorSeeds = []Seed{
		{Field: "33", Pack: "6pc"},
		{Field: "34", Pack: "12pc"},
	}
	MultiColorSeeds = []Seed{
		{Field: "154", Pack: "4in1"},
	}
)

var packagingTypes = map[string]string{
	"Single Card":      "sc",
	"Mini Single Card": "msc",
	"Hanger Tag":       "ht",
	"3-Pack":           "p3",
	"5-Pack":           "p5",
	"Gift Box":         "box",
}

// PackagingType translates the packaging-option answer into the packaging
// key token.
func PackagingType(label string) (string, error) {
	t, ok := packagingTypes[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackaging, label)
	}
	return t, nil
}

var packagingFlag = map[bool]string{
	true:  "c",
	false: "s",
}

// PackagingFlag returns the customized/standard token of a packaging key.
func PackagingFlag(customized bool) string {
	return packagingFlag[customized]
}

var languages = map[string]string{
	"English": "540",
	"German":  "541",
	"French":  "542",
	"Dutch":   "543",
	"Spanish": "544",
	"Italian": "545",
}

// LanguageItem returns the stock item code for a language-specific imprint.
func LanguageItem(label string) (string, error) {
	code, ok := languages[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, label)
	}
	return code, nil
}

// CountryCodes maps the country names offered by the form to ERP region
// codes. Unmapped countries deliberately resolve to an empty code.
var CountryCodes = map[string]string{
	"Austria":        "AT",
	"Belgium":        "BE",
	"Croatia":        "HR",
	"Czech Republic": "CZ",
	"Denmark":        "DK",
	"Estonia":        "EE",
	"Finland":        "FI",
	"France":         "FR",
	"Germany":        "DE",
	"Greece":         "GR",
	"Hungary":        "HU",
	"Ireland":        "IE",
	"Italy":          "IT",
	"Latvia":         "LV",
	"Lithuania":      "LT",
	"Luxembourg":     "LU",
	"Netherlands":    "NL",
	"Norway":         "NO",
	"Poland":         "PL",
	"Portugal":       "PT",
	"Romania":        "RO",
	"Slovakia":       "SK",
	"Slovenia":       "SI",
	"Spain":          "ES",
	"Sweden":         "SE",
	"Switzerland":    "CH",
	"United Kingdom": "GB",
}
