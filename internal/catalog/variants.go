package catalog

import "fmt"

// Fixed item codes used by the mapper outside the variant tables.
const (
	ItemColorPrintRun   = "100" // per-unit color-print surcharge
	ItemCustomText      = "604" // generic custom-text imprint
	ItemEngravingFee    = "625" // flat personalization fee
	ItemPackagingFee    = "626" // flat customer-supplied-design packaging fee
	ItemSharpenerPlain  = "720"
	ItemSharpenerPrint  = "722"
	ItemOrderProcessing = "997" // closing processing line on every order
)

// variants is the combined variant table keyed by
// "<prefix> <state> <language> <pack> <size>".
var variants = map[string]string{
	// graphite, standard stock, sharpened
	"std sp English HB normal": "1001",
	"std sp English 2B normal": "1002",
	"std sp English 2H normal": "1003",
	"std sp German HB normal":  "1011",
	"std sp German 2B normal":  "1012",
	"std sp German 2H normal":  "1013",
	"std sp French HB normal":  "1021",
	"std sp French 2B normal":  "1022",
	"std sp French 2H normal":  "1023",
	"std sp Other HB normal":   "1031",
	"std sp Other 2B normal":   "1032",
	"std sp Other 2H normal":   "1033",
	// graphite, standard stock, unsharpened
	"std up English HB normal": "1041",
	"std up English 2B normal": "1042",
	"std up English 2H normal": "1043",
	"std up German HB normal":  "1051",
	"std up German 2B normal":  "1052",
	"std up German 2H normal":  "1053",
	"std up French HB normal":  "1061",
	"std up French 2B normal":  "1062",
	"std up French 2H normal":  "1063",
	"std up Other HB normal":   "1071",
	"std up Other 2B normal":   "1072",
	"std up Other 2H normal":   "1073",
	// graphite, personalized
	"pers sp Other HB normal": "1081",
	"pers sp Other 2B normal": "1082",
	"pers sp Other 2H normal": "1083",
	"pers up Other HB normal": "1091",
	"pers up Other 2B normal": "1092",
	"pers up Other 2H normal": "1093",
	// graphite, mini
	"std up Other HB mini":  "1101",
	"std up Other 2B mini":  "1102",
	"std up Other 2H mini":  "1103",
	"pers up Other HB mini": "1111",
	"pers up Other 2B mini": "1112",
	"pers up Other 2H mini": "1113",
	// color, standard stock
	"std sp English 6pc normal":  "1201",
	"std sp English 12pc normal": "1202",
	"std sp German 6pc normal":   "1211",
	"std sp German 12pc normal":  "1212",
	"std sp French 6pc normal":   "1221",
	"std sp French 12pc normal":  "1222",
	"std sp Other 6pc normal":    "1231",
	"std sp Other 12pc normal":   "1232",
	"std sp Other 6pc mini":      "1241",
	"std sp Other 12pc mini":     "1242",
	// color, personalized
	"pers sp Other 6pc normal":  "1251",
	"pers sp Other 12pc normal": "1252",
	"pers sp Other 6pc mini":    "1261",
	"pers sp Other 12pc mini":   "1262",
	// multi-color
	"std sp Other 4in1 normal":  "1301",
	"std sp Other 4in1 mini":    "1302",
	"pers sp Other 4in1 normal": "1311",
	"pers sp Other 4in1 mini":   "1312",
}

// Variant resolves a full composite key to a concrete item code.
func Variant(key string) (string, error) {
	code, ok := variants[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, key)
	}
	return code, nil
}

// packagingItems is keyed by "<type> <c|s> <language>". The 3-pack and
// 5-pack trays are language-neutral; their codes drive the multi-unit
// quantity division in the mapper.
var packagingItems = map[string]string{
	"sc s English": "2010",
	"sc s German":  "2011",
	"sc s French":  "2012",
	"sc s Other":   "2013",
	"sc c English": "5010",
	"sc c German":  "5011",
	"sc c French":  "5012",
	"sc c Other":   "5013",

	"msc s English": "2020",
	"msc s German":  "2021",
	"msc s French":  "2022",
	"msc s Other":   "2023",
	"msc c English": "5020",
	"msc c German":  "5021",
	"msc c French":  "5022",
	"msc c Other":   "5023",

	// hanger tags carry no customized sub-variant
	"ht s English": "2030",
	"ht s German":  "2031",
	"ht s French":  "2032",
	"ht s Other":   "2033",

	"box s English": "2040",
	"box s German":  "2041",
	"box s French":  "2042",
	"box s Other":   "2043",
	"box c English": "5040",
	"box c German":  "5041",
	"box c French":  "5042",
	"box c Other":   "5043",

	"p3 s English": "2100",
	"p3 s German":  "2100",
	"p3 s French":  "2100",
	"p3 s Other":   "2100",
	"p3 c English": "5240",
	"p3 c German":  "5240",
	"p3 c French":  "5240",
	"p3 c Other":   "5240",

	"p5 s English": "2300",
	"p5 s German":  "2300",
	"p5 s French":  "2300",
	"p5 s Other":   "2300",
	"p5 c English": "5250",
	"p5 c German":  "5250",
	"p5 c French":  "5250",
	"p5 c Other":   "5250",
}

// PackagingItem resolves a packaging key to a concrete item code.
func PackagingItem(key string) (string, error) {
	code, ok := packagingItems[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackaging, key)
	}
	return code, nil
}
