package verifyService

import (
	"context"
	"errors"
	"fmt"
	"library_seeder/internal/repository"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
)

//go:generate mockgen -source=verifyService.go -destination=mocks/mock_verifyService.go -package=mocks

type Store interface {
	CountDocuments(ctx context.Context, collection string) (int64, error)
	SampleDocument(ctx context.Context, collection string) (bson.M, error)
	AllDocuments(ctx context.Context, collection string) ([]bson.M, error)
}

// Collections is the fixed census order.
var Collections = []string{
	repository.CollBooks,
	repository.CollAuthors,
	repository.CollUsers,
	repository.CollReviews,
	repository.CollIssueDetails,
}

type CollectionReport struct {
	Collection string
	Count      int64
	Sample     string
}

// EmbeddingReport carries the two denormalization consistency ratios.
type EmbeddingReport struct {
	WellFormedBooks  int
	TotalBooks       int
	AuthorsWithBooks int
	TotalAuthors     int
}

func (r EmbeddingReport) String() string {
	return fmt.Sprintf(
		"books with well-formed embedded author: %d/%d, authors listing books: %d/%d",
		r.WellFormedBooks, r.TotalBooks, r.AuthorsWithBooks, r.TotalAuthors,
	)
}

type VerifyService struct {
	store Store
}

func New(store Store) *VerifyService {
	return &VerifyService{store: store}
}

// Census counts each collection and renders a one-line summary of one
// arbitrary document when the collection is not empty. Any store error is
// returned as-is, the caller treats it as fatal.
func (s *VerifyService) Census(ctx context.Context) ([]CollectionReport, error) {
	op := "VerifyService.Census"

	reports := make([]CollectionReport, 0, len(Collections))
	for _, coll := range Collections {
		count, err := s.store.CountDocuments(ctx, coll)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", coll, err)
		}

		report := CollectionReport{Collection: coll, Count: count}
		if count > 0 {
			doc, err := s.store.SampleDocument(ctx, coll)
			if err != nil && !errors.Is(err, repository.ErrNoDocuments) {
				return nil, fmt.Errorf("sample %s: %w", coll, err)
			}
			if doc != nil {
				report.Sample = summarize(coll, doc)
			}
		}
		reports = append(reports, report)

		slog.Debug(
			"Collection counted",
			slog.String("op", op),
			slog.String("collection", coll),
			slog.Int64("count", count),
		)
	}
	return reports, nil
}

// CheckEmbedding scans books and authors and computes the two structural
// ratios: books whose first embedded author carries both an id and a name,
// and authors listing at least one book.
func (s *VerifyService) CheckEmbedding(ctx context.Context) (EmbeddingReport, error) {
	books, err := s.store.AllDocuments(ctx, repository.CollBooks)
	if err != nil {
		return EmbeddingReport{}, fmt.Errorf("scan books: %w", err)
	}
	authors, err := s.store.AllDocuments(ctx, repository.CollAuthors)
	if err != nil {
		return EmbeddingReport{}, fmt.Errorf("scan authors: %w", err)
	}

	report := EmbeddingReport{TotalBooks: len(books), TotalAuthors: len(authors)}
	for _, book := range books {
		if hasWellFormedAuthor(book) {
			report.WellFormedBooks++
		}
	}
	for _, author := range authors {
		if len(asArray(author["books"])) > 0 {
			report.AuthorsWithBooks++
		}
	}
	return report, nil
}

// hasWellFormedAuthor reports whether authors[0] is an embedded object
// carrying both an id and a name, rather than a bare id reference.
func hasWellFormedAuthor(book bson.M) bool {
	authors := asArray(book["authors"])
	if len(authors) == 0 {
		return false
	}
	first, ok := asDocument(authors[0])
	if !ok {
		return false
	}
	return asString(first["_id"], "") != "" && asString(first["name"], "") != ""
}

// summarize renders the type-specific one-line sample for a collection.
// Missing fields fall back to "Unknown" or zero rather than failing.
func summarize(collection string, doc bson.M) string {
	switch collection {
	case repository.CollBooks:
		firstAuthor := "Unknown"
		if authors := asArray(doc["authors"]); len(authors) > 0 {
			if ref, ok := asDocument(authors[0]); ok {
				firstAuthor = asString(ref["name"], "Unknown")
			}
		}
		return fmt.Sprintf("%s by %s", asString(doc["title"], "Unknown"), firstAuthor)
	case repository.CollAuthors:
		return fmt.Sprintf("%s (%d books)", asString(doc["name"], "Unknown"), len(asArray(doc["books"])))
	case repository.CollUsers:
		return fmt.Sprintf("%s (admin: %t)", asString(doc["name"], "Unknown"), asBool(doc["isAdmin"]))
	case repository.CollReviews:
		return fmt.Sprintf("rated %d by %s", asInt(doc["rating"]), asString(doc["reviewer"], "Unknown"))
	case repository.CollIssueDetails:
		return fmt.Sprintf("%s of %s", asString(doc["recordType"], "Unknown"), asString(doc["bookTitle"], "Unknown"))
	default:
		return ""
	}
}

func asString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func asArray(v any) bson.A {
	switch a := v.(type) {
	case bson.A:
		return a
	case []any:
		return bson.A(a)
	default:
		return nil
	}
}

func asDocument(v any) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case bson.D:
		m := make(bson.M, len(d))
		for _, e := range d {
			m[e.Key] = e.Value
		}
		return m, true
	case map[string]any:
		return bson.M(d), true
	default:
		return nil, false
	}
}
