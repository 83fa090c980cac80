package categorize

// DefaultRules returns the standard rule list, applied in this order.
// Merchant patterns match whole-word occurrences anywhere in the merchant name.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:             "Subscriptions",
			Keywords:         []string{"netflix", "spotify", "amazon prime", "subscription", "monthly", "yearly"},
			MerchantPatterns: []string{`.*\bsubscription\b.*`, `.*\bstreaming\b.*`},
		},
		{
			Name:             "Utilities",
			Keywords:         []string{"electricity", "water", "gas", "internet", "phone", "utility", "broadband"},
			MerchantPatterns: []string{`.*\benergy\b.*`, `.*\butilities\b.*`},
		},
		{
			Name:             "Travel",
			Keywords:         []string{"airline", "hotel", "train", "taxi", "uber", "flight", "booking"},
			MerchantPatterns: []string{`.*\bairlines\b.*`, `.*\bhotels\b.*`},
		},
		{
			Name:             "Food & Dining",
			Keywords:         []string{"restaurant", "cafe", "grocery", "food", "takeaway", "delivery"},
			MerchantPatterns: []string{`.*\brestaurant\b.*`, `.*\bcafe\b.*`},
		},
		{
			Name:             "Entertainment",
			Keywords:         []string{"cinema", "theater", "concert", "movie", "game", "entertainment"},
			MerchantPatterns: []string{`.*\bcinema\b.*`, `.*\btheater\b.*`},
		},
		{
			Name:             "Business",
			Keywords:         []string{"office", "software", "consulting", "business", "professional"},
			MerchantPatterns: []string{`.*\bconsulting\b.*`, `.*\bservices\b.*`},
		},
		{
			Name:             "Shopping",
			Keywords:         []string{"amazon", "shop", "store", "retail", "purchase"},
			MerchantPatterns: []string{`.*\bstore\b.*`, `.*\bshop\b.*`},
		},
	}
}
