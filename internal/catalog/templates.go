package catalog

// Templates indexes the order-form templates the frontend can instantiate.
// Returned verbatim by the customer-lookup route so the form can prefill
// itself; nothing in this service interprets the values.
var Templates = map[string]string{
	"Standard pencil order": "TPL-STD",
	"School pack order":     "TPL-SCHOOL",
	"Trade fair giveaway":   "TPL-FAIR",
	"Wedding favours":       "TPL-WED",
	"Corporate gifting":     "TPL-CORP",
}
