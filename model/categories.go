package model

import "slices"

// Fixed category vocabularies. The admin UI renders these as select
// options, so anything outside the list is rejected on save
var (
	AffirmationCategories = []string{"Success", "Health", "Wealth", "Love", "Happiness", "Confidence", "Peace", "Growth"}
	MusicCategories       = []string{"Focus", "Meditation", "Nature", "Sleep", "Energy", "Relaxation"}
	VideoCategories       = []string{"Motivation", "Success", "Inspiration", "Personal Development", "Mindfulness", "Goals", "Productivity"}
)

func ValidCategory(set []string, category string) bool {
	return slices.Contains(set, category)
}
