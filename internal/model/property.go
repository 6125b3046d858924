package model

// PropertyRecord is the structured data extracted from a model reply.
// Every field is optional; absence is not an error.
type PropertyRecord struct {
	Images    []string       `json:"images"`
	Pricing   []PricingEntry `json:"pricing"`
	Builder   *string        `json:"builder,omitempty"`
	Amenities []string       `json:"amenities"`
}

// PricingEntry is one unit-type row from the reply's pricing array.
// Missing fields are filled with the N/A placeholder.
type PricingEntry struct {
	Configuration string `json:"configuration"`
	AreaSqft      string `json:"area_sqft"`
	PriceINR      string `json:"price_inr"`
}

// PlaceholderNA fills pricing fields the reply omitted
const PlaceholderNA = "N/A"
