package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDatasetShape(t *testing.T) {
	ds := Default()

	assert.Len(t, ds.Authors, 8)
	assert.Len(t, ds.Books, 12)
	assert.Len(t, ds.UserNames, 8)
	assert.Len(t, ds.Reservations, 3)
}

func TestEveryBookAuthorResolves(t *testing.T) {
	ds := Default()

	names := map[string]bool{}
	for _, author := range ds.Authors {
		names[author.Name] = true
	}

	for _, book := range ds.Books {
		assert.True(t, names[book.AuthorName], "book %q references unknown author %q", book.Title, book.AuthorName)
	}
}

func TestISBNsAreUnique(t *testing.T) {
	ds := Default()

	seen := map[string]string{}
	for _, book := range ds.Books {
		if prev, ok := seen[book.ISBN]; ok {
			t.Fatalf("ISBN %s shared by %q and %q", book.ISBN, prev, book.Title)
		}
		seen[book.ISBN] = book.Title
	}
}

func TestAuthorNamesAreUnique(t *testing.T) {
	ds := Default()

	seen := map[string]bool{}
	for _, author := range ds.Authors {
		assert.False(t, seen[author.Name], "duplicate author %q", author.Name)
		seen[author.Name] = true
	}
}

func TestReviewTemplates(t *testing.T) {
	ds := Default()

	// Curated title gets exactly its template set.
	assert.Len(t, ds.ReviewsFor("1984"), 3)

	// A title without curated reviews falls back to the two generic ones.
	assert.Equal(t, ds.GenericReviews, ds.ReviewsFor("Lord of the Flies"))
	assert.Len(t, ds.ReviewsFor("Lord of the Flies"), 2)
}

func TestReviewRatingsInRange(t *testing.T) {
	ds := Default()

	check := func(set []ReviewTemplate) {
		for _, tmpl := range set {
			assert.GreaterOrEqual(t, tmpl.Rating, 1)
			assert.LessOrEqual(t, tmpl.Rating, 5)
			assert.NotEmpty(t, tmpl.Text)
		}
	}

	for _, set := range ds.ReviewTemplates {
		check(set)
	}
	check(ds.GenericReviews)
}

func TestReviewTemplateTitlesExist(t *testing.T) {
	ds := Default()

	titles := map[string]bool{}
	for _, book := range ds.Books {
		titles[book.Title] = true
	}

	for title := range ds.ReviewTemplates {
		assert.True(t, titles[title], "review template for unknown title %q", title)
	}
}

func TestReservationIndicesInRange(t *testing.T) {
	ds := Default()

	for _, pair := range ds.Reservations {
		assert.GreaterOrEqual(t, pair.BookIdx, 0)
		assert.Less(t, pair.BookIdx, len(ds.Books))
		assert.GreaterOrEqual(t, pair.UserIdx, 0)
		assert.Less(t, pair.UserIdx, len(ds.UserNames))
	}
}

func TestAuthorFixturesStartUnlinked(t *testing.T) {
	ds := Default()

	for _, author := range ds.Authors {
		assert.Empty(t, author.ID, "fixture author %q must not carry an id", author.Name)
		assert.Empty(t, author.Books, "fixture author %q must start with no linked books", author.Name)
		assert.NotEmpty(t, author.SearchName)
	}
}
