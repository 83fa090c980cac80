package normalize

// Mapping describes where each canonical field lives inside one provider's
// raw transaction object. Paths are nested key sequences; a nil path means
// the provider does not supply that field.
type Mapping struct {
	ID          []string
	Date        []string
	Amount      []string
	Currency    []string
	Description []string
	Merchant    []string
	Type        []string
	Category    []string
}

// builtinMappings returns the field mappings for the supported providers.
//
// Wise statement lines carry the amount as a nested {value, currency} object
// and bury description and merchant under "details". Revolut returns flat
// fields and may include its own category, which the categorization engine
// can preserve as a fallback.
func builtinMappings() map[string]Mapping {
	return map[string]Mapping{
		"wise": {
			ID:          []string{"referenceNumber"},
			Date:        []string{"date"},
			Amount:      []string{"amount", "value"},
			Currency:    []string{"amount", "currency"},
			Description: []string{"details", "description"},
			Merchant:    []string{"details", "merchant", "name"},
			Type:        []string{"details", "type"},
		},
		"revolut": {
			ID:          []string{"id"},
			Date:        []string{"created_at"},
			Amount:      []string{"amount"},
			Currency:    []string{"currency"},
			Description: []string{"description"},
			Merchant:    []string{"merchant", "name"},
			Type:        []string{"type"},
			Category:    []string{"category"},
		},
	}
}
