package domain

// categories is the fixed set a campaign may be filed under. Order is part of
// the public listing.
var categories = []string{
	"Medical",
	"Education",
	"NGOs",
	"Environment",
	"Animal Care",
	"Disaster Relief",
	"Personal Causes",
}

// Categories returns a copy of the category enumeration in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether name is one of the known categories. Matching is
// exact and case-sensitive.
func IsCategory(name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
