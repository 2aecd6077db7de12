package catalog

import "fireclub-api/internal/models"

// The product line and store locator tables are fixed marketing content.
// Both lookup endpoints read from the same tables, built once at init.

var products = []models.Product{
	{
		ID:      "xtra",
		Name:    "Fire Xtra",
		Variant: "Longer Lasting Pleasure",
		Color:   "blue",
		Features: []string{
			"Super-dotted texture",
			"Flavored for enhanced taste",
			"Extra time lubricant",
			"3 condoms per pack",
		},
		Description: "Designed for extended pleasure with super-dotted texture and extra time lubricant.",
	},
	{
		ID:      "xtacy",
		Name:    "Fire Xtacy",
		Variant: "Greater Stimulation",
		Color:   "green",
		Features: []string{
			"Contoured design",
			"Flavored for pleasure",
			"Ribbed & studded",
			"3 condoms per pack",
		},
		Description: "Contoured design with ribbed and studded texture for maximum stimulation.",
	},
	{
		ID:      "xotica",
		Name:    "Fire Xotica",
		Variant: "More Intensity",
		Color:   "red",
		Features: []string{
			"Contoured design",
			"Strawberry flavored",
			"Ribbed texture",
			"Super dotted",
		},
		Description: "Strawberry flavored with super dotted and ribbed texture for intense pleasure.",
	},
}

var storeLocations = map[string][]string{
	"Lagos": {
		"Shoprite Ikeja",
		"Justrite Pharmacy VI",
		"Mega Plaza Pharmacy",
		"HealthPlus Pharmacy",
		"All major pharmacies",
	},
	"Abuja": {
		"Sahad Stores",
		"Next Cash & Carry",
		"Justrite Pharmacy",
		"All convenience stores",
	},
	"Port Harcourt": {
		"Shop N Save",
		"Major pharmacies",
		"Convenience stores",
	},
	"Kano": {
		"Selected pharmacies",
		"Major retail outlets",
	},
	"Ibadan": {
		"Major pharmacies",
		"Convenience stores",
	},
}

// Products returns the fixed product catalog, in catalog order.
func Products() []models.Product {
	return products
}

// StoreLocations returns the full state to store-list table.
func StoreLocations() map[string][]string {
	return storeLocations
}

// StoresByState looks up stores for a state by exact match. A miss is not an
// error: the caller is expected to fall back to nationwide availability.
func StoresByState(state string) ([]string, bool) {
	stores, ok := storeLocations[state]
	return stores, ok
}
