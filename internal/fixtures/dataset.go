// Package fixtures holds the declarative baseline dataset the populator
// seeds. The data is plain values, so the seeding logic can run against a
// different dataset without changes.
package fixtures

import "library_seeder/internal/model"

type Dataset struct {
	UserNames       []string
	Authors         []model.Author
	Books           []SeedBook
	ReviewTemplates map[string][]ReviewTemplate
	GenericReviews  []ReviewTemplate
	Reservations    []ReservationPair
}

// Default returns the baseline reference dataset.
func Default() Dataset {
	return Dataset{
		UserNames:       UserNames,
		Authors:         Authors,
		Books:           Books,
		ReviewTemplates: reviewTemplates,
		GenericReviews:  GenericReviews,
		Reservations:    Reservations,
	}
}

// ReviewsFor returns the curated review set for a title, or the generic
// fallback when no curated entry exists.
func (d Dataset) ReviewsFor(title string) []ReviewTemplate {
	if set, ok := d.ReviewTemplates[title]; ok {
		return set
	}
	return d.GenericReviews
}
