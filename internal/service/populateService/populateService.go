package populateService

import (
	"context"
	"errors"
	"fmt"
	"library_seeder/config"
	"library_seeder/internal/apiclient"
	"library_seeder/internal/fixtures"
	"library_seeder/internal/model"
	"log/slog"
)

//go:generate mockgen -source=populateService.go -destination=mocks/mock_populateService.go -package=mocks

// Store is the direct database access used for author resolution. Everything
// else goes through the API.
type Store interface {
	EnsureAuthor(ctx context.Context, author model.Author) (id string, created bool, err error)
	AppendAuthorBook(ctx context.Context, authorID, isbn string) error
}

type API interface {
	Login(ctx context.Context, name string) (token string, err error)
	GetBook(ctx context.Context, isbn string) (model.Book, error)
	CreateBook(ctx context.Context, token string, book model.Book) (model.Book, error)
	GetReviews(ctx context.Context, isbn string) ([]model.Review, error)
	CreateReview(ctx context.Context, token, isbn, text string, rating int) (model.Review, error)
	CreateReservation(ctx context.Context, token, isbn string) error
}

// PopulateService seeds the baseline dataset. Every stage is idempotent:
// existing records are skipped, only missing data is created.
type PopulateService struct {
	cfg   *config.Config
	store Store
	api   API
	data  fixtures.Dataset
}

func New(cfg *config.Config, store Store, api API, data fixtures.Dataset) *PopulateService {
	return &PopulateService{
		cfg:   cfg,
		store: store,
		api:   api,
		data:  data,
	}
}

// Run executes the seeding pipeline in dependency order. A missing admin
// token aborts the whole run; any other failure only drops its item.
func (s *PopulateService) Run(ctx context.Context) (*Report, error) {
	report := NewReport()

	adminToken, err := s.AcquireAdminToken(ctx)
	if err != nil {
		return nil, err
	}

	creds := s.EnsureUsers(ctx, report)
	authorIDs := s.EnsureAuthors(ctx, report)
	books := s.EnsureBooks(ctx, adminToken, authorIDs, report)
	s.EnsureReviews(ctx, books, creds, report)
	s.EnsureReservations(ctx, books, creds, report)

	return report, nil
}

// AcquireAdminToken logs in as the privileged fixed username. Failure here is
// fatal for the pipeline, privileged writes cannot proceed without it.
func (s *PopulateService) AcquireAdminToken(ctx context.Context) (string, error) {
	op := "PopulateService.AcquireAdminToken"

	token, err := s.api.Login(ctx, s.cfg.Api.AdminUsername)
	if err != nil {
		slog.Error(
			"Failed to acquire admin token",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("username", s.cfg.Api.AdminUsername),
		)
		return "", fmt.Errorf("%w: %w", ErrNoAdminToken, err)
	}

	slog.Info("Admin token acquired", slog.String("op", op))
	return token, nil
}

// EnsureUsers runs the login-or-create call for every seed user name.
// Failed names are dropped, the returned credentials keep input order.
func (s *PopulateService) EnsureUsers(ctx context.Context, report *Report) []model.Credential {
	op := "PopulateService.EnsureUsers"

	creds := make([]model.Credential, 0, len(s.data.UserNames))
	for _, name := range s.data.UserNames {
		token, err := s.api.Login(ctx, name)
		if err != nil {
			slog.Warn(
				"User login failed, dropping user",
				slog.String("op", op),
				slog.String("err", err.Error()),
				slog.String("name", name),
			)
			report.Users = append(report.Users, Outcome{Item: name, Status: StatusFailed, Reason: err.Error()})
			continue
		}
		creds = append(creds, model.Credential{Name: name, Token: token})
		report.Users = append(report.Users, Outcome{Item: name, Status: StatusEnsured})
	}

	slog.Info("Users ensured", slog.String("op", op), slog.Int("count", len(creds)))
	return creds
}

// EnsureAuthors upserts every fixture author and returns a name-to-id map
// for book embedding. Authors that fail stay absent from the map.
func (s *PopulateService) EnsureAuthors(ctx context.Context, report *Report) map[string]string {
	op := "PopulateService.EnsureAuthors"

	ids := make(map[string]string, len(s.data.Authors))
	for _, author := range s.data.Authors {
		id, created, err := s.store.EnsureAuthor(ctx, author)
		if err != nil {
			report.Authors = append(report.Authors, Outcome{Item: author.Name, Status: StatusFailed, Reason: err.Error()})
			continue
		}
		ids[author.Name] = id
		if created {
			report.Authors = append(report.Authors, Outcome{Item: author.Name, Status: StatusCreated})
		} else {
			report.Authors = append(report.Authors, Outcome{Item: author.Name, Status: StatusSkipped})
		}
	}

	slog.Info("Authors ensured", slog.String("op", op), slog.Int("resolved", len(ids)))
	return ids
}

// EnsureBooks creates every fixture book missing from the API. A book whose
// author did not resolve is not created with a dangling reference, it is
// recorded as failed instead. The returned refs cover created and
// already-present books alike, in fixture order.
func (s *PopulateService) EnsureBooks(ctx context.Context, adminToken string, authorIDs map[string]string, report *Report) []model.BookRef {
	op := "PopulateService.EnsureBooks"

	refs := make([]model.BookRef, 0, len(s.data.Books))
	for _, seed := range s.data.Books {
		existing, err := s.api.GetBook(ctx, seed.ISBN)
		if err == nil {
			refs = append(refs, model.BookRef{ISBN: existing.ISBN, Title: existing.Title})
			report.Books = append(report.Books, Outcome{Item: seed.Title, Status: StatusSkipped})
			continue
		}
		if !errors.Is(err, apiclient.ErrNotFound) {
			slog.Warn(
				"Book lookup failed, dropping book",
				slog.String("op", op),
				slog.String("err", err.Error()),
				slog.String("isbn", seed.ISBN),
			)
			report.Books = append(report.Books, Outcome{Item: seed.Title, Status: StatusFailed, Reason: err.Error()})
			continue
		}

		authorID, ok := authorIDs[seed.AuthorName]
		if !ok {
			slog.Warn(
				"Author unresolved, dropping book",
				slog.String("op", op),
				slog.String("author", seed.AuthorName),
				slog.String("isbn", seed.ISBN),
			)
			report.Books = append(report.Books, Outcome{Item: seed.Title, Status: StatusFailed, Reason: "unresolved author " + seed.AuthorName})
			continue
		}

		book := model.Book{
			ISBN:           seed.ISBN,
			Title:          seed.Title,
			Year:           seed.Year,
			Authors:        []model.AuthorRef{{ID: authorID, Name: seed.AuthorName}},
			Synopsis:       seed.Synopsis,
			Publisher:      seed.Publisher,
			Pages:          seed.Pages,
			Language:       seed.Language,
			TotalInventory: seed.TotalInventory,
			Available:      seed.Available,
			Attributes:     []string{},
			Reviews:        []model.Review{},
		}

		created, err := s.api.CreateBook(ctx, adminToken, book)
		if err != nil {
			slog.Warn(
				"Book creation failed, dropping book",
				slog.String("op", op),
				slog.String("err", err.Error()),
				slog.String("isbn", seed.ISBN),
			)
			report.Books = append(report.Books, Outcome{Item: seed.Title, Status: StatusFailed, Reason: err.Error()})
			continue
		}

		// Keep the authoritative author record pointing back at its books.
		if err := s.store.AppendAuthorBook(ctx, authorID, seed.ISBN); err != nil {
			slog.Warn(
				"Failed to link book on author record",
				slog.String("op", op),
				slog.String("err", err.Error()),
				slog.String("authorID", authorID),
				slog.String("isbn", seed.ISBN),
			)
		}

		refs = append(refs, model.BookRef{ISBN: created.ISBN, Title: created.Title})
		report.Books = append(report.Books, Outcome{Item: seed.Title, Status: StatusCreated})
	}

	slog.Info("Books ensured", slog.String("op", op), slog.Int("resolved", len(refs)))
	return refs
}

// EnsureReviews seeds canned reviews for every book that has none yet,
// cycling reviewer credentials by submission index. Books with any existing
// review are left untouched, partial sets are never supplemented.
func (s *PopulateService) EnsureReviews(ctx context.Context, books []model.BookRef, creds []model.Credential, report *Report) {
	op := "PopulateService.EnsureReviews"

	if len(creds) == 0 {
		slog.Warn("No user credentials available, skipping review seeding", slog.String("op", op))
		return
	}

	submitted := 0
	for _, book := range books {
		existing, err := s.api.GetReviews(ctx, book.ISBN)
		if err != nil {
			report.Reviews = append(report.Reviews, Outcome{Item: book.Title, Status: StatusFailed, Reason: err.Error()})
			continue
		}
		if len(existing) > 0 {
			report.Reviews = append(report.Reviews, Outcome{Item: book.Title, Status: StatusSkipped})
			continue
		}

		for _, tmpl := range s.data.ReviewsFor(book.Title) {
			cred := creds[submitted%len(creds)]
			submitted++

			item := fmt.Sprintf("%s / %s", book.Title, cred.Name)
			if _, err := s.api.CreateReview(ctx, cred.Token, book.ISBN, tmpl.Text, tmpl.Rating); err != nil {
				slog.Warn(
					"Review submission failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
					slog.String("isbn", book.ISBN),
					slog.String("reviewer", cred.Name),
				)
				report.Reviews = append(report.Reviews, Outcome{Item: item, Status: StatusFailed, Reason: err.Error()})
				continue
			}
			report.Reviews = append(report.Reviews, Outcome{Item: item, Status: StatusCreated})
		}
	}

	slog.Info("Reviews ensured", slog.String("op", op), slog.Int("submitted", submitted))
}

// EnsureReservations submits the fixed reservation pairs. A conflict is the
// expected answer on a repeat run and counts as skipped.
func (s *PopulateService) EnsureReservations(ctx context.Context, books []model.BookRef, creds []model.Credential, report *Report) {
	op := "PopulateService.EnsureReservations"

	for _, pair := range s.data.Reservations {
		if pair.BookIdx >= len(books) || pair.UserIdx >= len(creds) {
			report.Reservations = append(report.Reservations, Outcome{
				Item:   fmt.Sprintf("book #%d / user #%d", pair.BookIdx, pair.UserIdx),
				Status: StatusFailed,
				Reason: "referenced book or user was dropped earlier in the run",
			})
			continue
		}

		book := books[pair.BookIdx]
		cred := creds[pair.UserIdx]
		item := fmt.Sprintf("%s / %s", book.Title, cred.Name)

		err := s.api.CreateReservation(ctx, cred.Token, book.ISBN)
		switch {
		case err == nil:
			report.Reservations = append(report.Reservations, Outcome{Item: item, Status: StatusCreated})
		case errors.Is(err, apiclient.ErrConflict):
			slog.Info(
				"Reservation already exists",
				slog.String("op", op),
				slog.String("isbn", book.ISBN),
				slog.String("user", cred.Name),
			)
			report.Reservations = append(report.Reservations, Outcome{Item: item, Status: StatusSkipped, Reason: "already reserved"})
		default:
			slog.Warn(
				"Reservation failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
				slog.String("isbn", book.ISBN),
				slog.String("user", cred.Name),
			)
			report.Reservations = append(report.Reservations, Outcome{Item: item, Status: StatusFailed, Reason: err.Error()})
		}
	}
}
