package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"library_seeder/config"
	"library_seeder/internal/model"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the library REST API. Every call is stateless, auth is
// passed per request as a bearer token.
type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseUrl: strings.TrimRight(cfg.Api.BaseUrl, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Api.TimeoutSec) * time.Second,
		},
	}
}

// Login hits the login-or-create endpoint for the given display name and
// returns the issued token. The API creates the user as a side effect if it
// does not exist yet.
func (c *Client) Login(ctx context.Context, name string) (string, error) {
	endpoint := c.baseUrl + "/users/login/" + url.PathEscape(name)

	var out struct {
		Jwt string `json:"jwt"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, "", nil, &out); err != nil {
		return "", err
	}
	if out.Jwt == "" {
		return "", ErrMissingToken
	}
	return out.Jwt, nil
}

// GetBook fetches a book by ISBN. Returns ErrNotFound when the API has no
// record for it.
func (c *Client) GetBook(ctx context.Context, isbn string) (model.Book, error) {
	endpoint := c.baseUrl + "/books/" + url.PathEscape(isbn)

	var book model.Book
	if err := c.doJSON(ctx, http.MethodGet, endpoint, "", nil, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (c *Client) CreateBook(ctx context.Context, token string, book model.Book) (model.Book, error) {
	endpoint := c.baseUrl + "/books"

	var created model.Book
	if err := c.doJSON(ctx, http.MethodPost, endpoint, token, book, &created); err != nil {
		return model.Book{}, err
	}
	return created, nil
}

func (c *Client) GetReviews(ctx context.Context, isbn string) ([]model.Review, error) {
	endpoint := c.baseUrl + "/books/" + url.PathEscape(isbn) + "/reviews"

	var reviews []model.Review
	if err := c.doJSON(ctx, http.MethodGet, endpoint, "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, token, isbn, text string, rating int) (model.Review, error) {
	endpoint := c.baseUrl + "/books/" + url.PathEscape(isbn) + "/reviews"

	payload := model.Review{Text: text, Rating: rating}

	var created model.Review
	if err := c.doJSON(ctx, http.MethodPost, endpoint, token, payload, &created); err != nil {
		return model.Review{}, err
	}
	return created, nil
}

// CreateReservation submits a reservation with an empty body. A conflict
// response means the reservation already exists and maps to ErrConflict.
func (c *Client) CreateReservation(ctx context.Context, token, isbn string) error {
	endpoint := c.baseUrl + "/reservations/" + url.PathEscape(isbn)

	return c.doJSON(ctx, http.MethodPost, endpoint, token, nil, nil)
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil. Status codes 404 and 409 map to
// sentinel errors so callers can branch on them.
func (c *Client) doJSON(ctx context.Context, method, endpoint, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode >= 300:
		return fmt.Errorf("%s %s: unexpected status %s", method, endpoint, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
