package apiclient

import (
	"context"
	"testing"

	"library_seeder/config"
	"library_seeder/internal/model"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type apiClientSuite struct {
	suite.Suite

	cfg    *config.Config
	client *Client
}

func TestApiClientSuite(t *testing.T) {
	suite.Run(t, new(apiClientSuite))
}

func (s *apiClientSuite) SetupSuite() {
	s.cfg = &config.Config{
		Api: config.Api{
			BaseUrl:       "http://localhost:8080",
			AdminUsername: "admin",
			TimeoutSec:    5,
		},
	}
}

func (s *apiClientSuite) SetupTest() {
	s.client = New(s.cfg)
	gock.InterceptClient(s.client.httpClient)
}

func (s *apiClientSuite) TearDownTest() {
	gock.Off()
}

func (s *apiClientSuite) Test_Login_Success() {
	gock.New("http://localhost:8080").
		Get("/users/login/admin").
		Reply(200).
		JSON(map[string]string{"jwt": "admin-token"})

	token, err := s.client.Login(context.Background(), "admin")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "admin-token", token)
	assert.True(s.T(), gock.IsDone())
}

func (s *apiClientSuite) Test_Login_NameWithSpace() {
	gock.New("http://localhost:8080").
		Get("/users/login/Alice Johnson").
		Reply(200).
		JSON(map[string]string{"jwt": "alice-token"})

	token, err := s.client.Login(context.Background(), "Alice Johnson")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "alice-token", token)
}

func (s *apiClientSuite) Test_Login_MissingTokenField() {
	gock.New("http://localhost:8080").
		Get("/users/login/admin").
		Reply(200).
		JSON(map[string]string{"message": "ok"})

	token, err := s.client.Login(context.Background(), "admin")

	assert.Empty(s.T(), token)
	assert.ErrorIs(s.T(), err, ErrMissingToken)
}

func (s *apiClientSuite) Test_Login_ServerError() {
	gock.New("http://localhost:8080").
		Get("/users/login/admin").
		Reply(500)

	token, err := s.client.Login(context.Background(), "admin")

	assert.Empty(s.T(), token)
	assert.NotNil(s.T(), err)
}

func (s *apiClientSuite) Test_GetBook_Success() {
	gock.New("http://localhost:8080").
		Get("/books/9780451524935").
		Reply(200).
		JSON(map[string]any{
			"isbn":  "9780451524935",
			"title": "1984",
			"authors": []map[string]string{
				{"_id": "author-1", "name": "George Orwell"},
			},
		})

	book, err := s.client.GetBook(context.Background(), "9780451524935")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "1984", book.Title)
	assert.Equal(s.T(), "author-1", book.Authors[0].ID)
}

func (s *apiClientSuite) Test_GetBook_NotFound() {
	gock.New("http://localhost:8080").
		Get("/books/9780451524935").
		Reply(404)

	_, err := s.client.GetBook(context.Background(), "9780451524935")

	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *apiClientSuite) Test_CreateBook_SendsBearerToken() {
	gock.New("http://localhost:8080").
		Post("/books").
		MatchHeader("Authorization", "Bearer admin-token").
		MatchHeader("Content-Type", "application/json").
		Reply(201).
		JSON(map[string]any{"isbn": "9780451524935", "title": "1984"})

	book := model.Book{
		ISBN:       "9780451524935",
		Title:      "1984",
		Authors:    []model.AuthorRef{{ID: "author-1", Name: "George Orwell"}},
		Attributes: []string{},
		Reviews:    []model.Review{},
	}

	created, err := s.client.CreateBook(context.Background(), "admin-token", book)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "9780451524935", created.ISBN)
	assert.True(s.T(), gock.IsDone())
}

func (s *apiClientSuite) Test_GetReviews_Empty() {
	gock.New("http://localhost:8080").
		Get("/books/9780451524935/reviews").
		Reply(200).
		JSON([]any{})

	reviews, err := s.client.GetReviews(context.Background(), "9780451524935")

	assert.Nil(s.T(), err)
	assert.Empty(s.T(), reviews)
}

func (s *apiClientSuite) Test_CreateReview_Success() {
	gock.New("http://localhost:8080").
		Post("/books/9780451524935/reviews").
		MatchHeader("Authorization", "Bearer user-token").
		JSON(map[string]any{"text": "great read", "rating": 5}).
		Reply(201).
		JSON(map[string]any{"text": "great read", "rating": 5, "reviewer": "Alice Johnson"})

	review, err := s.client.CreateReview(context.Background(), "user-token", "9780451524935", "great read", 5)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Alice Johnson", review.Reviewer)
}

func (s *apiClientSuite) Test_CreateReservation_Success() {
	gock.New("http://localhost:8080").
		Post("/reservations/9780451524935").
		MatchHeader("Authorization", "Bearer user-token").
		Reply(201)

	err := s.client.CreateReservation(context.Background(), "user-token", "9780451524935")

	assert.Nil(s.T(), err)
}

func (s *apiClientSuite) Test_CreateReservation_Conflict() {
	gock.New("http://localhost:8080").
		Post("/reservations/9780451524935").
		Reply(409)

	err := s.client.CreateReservation(context.Background(), "user-token", "9780451524935")

	assert.ErrorIs(s.T(), err, ErrConflict)
}
