package verifyService

import (
	"context"
	"errors"
	"testing"

	"library_seeder/internal/repository"
	"library_seeder/internal/service/verifyService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
)

type verifyServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	store    *mocks.MockStore
	service  *VerifyService
}

func TestVerifyServiceSuite(t *testing.T) {
	suite.Run(t, new(verifyServiceSuite))
}

func (s *verifyServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *verifyServiceSuite) SetupTest() {
	s.store = mocks.NewMockStore(s.mockCtrl)
	s.service = New(s.store)
}

func (s *verifyServiceSuite) Test_Census_Success() {
	ctx := context.Background()

	counts := map[string]int64{
		repository.CollBooks:        12,
		repository.CollAuthors:      8,
		repository.CollUsers:        9,
		repository.CollReviews:      26,
		repository.CollIssueDetails: 0,
	}
	samples := map[string]bson.M{
		repository.CollBooks: {
			"title":   "1984",
			"authors": bson.A{bson.M{"_id": "author-1", "name": "George Orwell"}},
		},
		repository.CollAuthors: {
			"name":  "George Orwell",
			"books": bson.A{"9780451524935", "9780452284241"},
		},
		repository.CollUsers: {
			"name":    "Alice Johnson",
			"isAdmin": false,
		},
		repository.CollReviews: {
			"rating":   int32(5),
			"reviewer": "Bob Smith",
		},
	}

	for coll, count := range counts {
		s.store.EXPECT().CountDocuments(ctx, coll).Return(count, nil)
	}
	for coll, doc := range samples {
		s.store.EXPECT().SampleDocument(ctx, coll).Return(doc, nil)
	}

	reports, err := s.service.Census(ctx)

	assert.Nil(s.T(), err)
	assert.Len(s.T(), reports, 5)

	byCollection := map[string]CollectionReport{}
	for _, r := range reports {
		byCollection[r.Collection] = r
	}

	assert.Equal(s.T(), "1984 by George Orwell", byCollection[repository.CollBooks].Sample)
	assert.Equal(s.T(), "George Orwell (2 books)", byCollection[repository.CollAuthors].Sample)
	assert.Equal(s.T(), "Alice Johnson (admin: false)", byCollection[repository.CollUsers].Sample)
	assert.Equal(s.T(), "rated 5 by Bob Smith", byCollection[repository.CollReviews].Sample)

	// Empty collection: counted, never sampled.
	assert.Equal(s.T(), int64(0), byCollection[repository.CollIssueDetails].Count)
	assert.Empty(s.T(), byCollection[repository.CollIssueDetails].Sample)
}

func (s *verifyServiceSuite) Test_Census_OrderIsFixed() {
	ctx := context.Background()

	for _, coll := range Collections {
		s.store.EXPECT().CountDocuments(ctx, coll).Return(int64(0), nil)
	}

	reports, err := s.service.Census(ctx)

	assert.Nil(s.T(), err)
	for i, coll := range Collections {
		assert.Equal(s.T(), coll, reports[i].Collection)
	}
}

func (s *verifyServiceSuite) Test_Census_MissingFieldsFallBack() {
	ctx := context.Background()

	s.store.EXPECT().CountDocuments(ctx, repository.CollBooks).Return(int64(1), nil)
	s.store.EXPECT().SampleDocument(ctx, repository.CollBooks).Return(bson.M{}, nil)
	s.store.EXPECT().CountDocuments(ctx, repository.CollAuthors).Return(int64(0), nil)
	s.store.EXPECT().CountDocuments(ctx, repository.CollUsers).Return(int64(0), nil)
	s.store.EXPECT().CountDocuments(ctx, repository.CollReviews).Return(int64(1), nil)
	s.store.EXPECT().SampleDocument(ctx, repository.CollReviews).Return(bson.M{}, nil)
	s.store.EXPECT().CountDocuments(ctx, repository.CollIssueDetails).Return(int64(0), nil)

	reports, err := s.service.Census(ctx)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Unknown by Unknown", reports[0].Sample)
	assert.Equal(s.T(), "rated 0 by Unknown", reports[3].Sample)
}

func (s *verifyServiceSuite) Test_Census_CountErrorIsFatal() {
	ctx := context.Background()
	queryErr := errors.New("connection reset")

	s.store.EXPECT().
		CountDocuments(ctx, repository.CollBooks).
		Return(int64(0), queryErr)

	reports, err := s.service.Census(ctx)

	assert.Nil(s.T(), reports)
	assert.ErrorIs(s.T(), err, queryErr)
}

func (s *verifyServiceSuite) Test_CheckEmbedding_Ratios() {
	ctx := context.Background()

	books := []bson.M{
		// Well-formed embedded author object.
		{"title": "1984", "authors": bson.A{bson.M{"_id": "author-1", "name": "George Orwell"}}},
		// Bare id reference instead of an embedded object.
		{"title": "Drifted", "authors": bson.A{"author-2"}},
		// No authors at all.
		{"title": "Orphan"},
	}
	authors := []bson.M{
		{"name": "George Orwell", "books": bson.A{"9780451524935"}},
		{"name": "Unpublished", "books": bson.A{}},
	}

	s.store.EXPECT().AllDocuments(ctx, repository.CollBooks).Return(books, nil)
	s.store.EXPECT().AllDocuments(ctx, repository.CollAuthors).Return(authors, nil)

	report, err := s.service.CheckEmbedding(ctx)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 1, report.WellFormedBooks)
	assert.Equal(s.T(), 3, report.TotalBooks)
	assert.Equal(s.T(), 1, report.AuthorsWithBooks)
	assert.Equal(s.T(), 2, report.TotalAuthors)
}

func (s *verifyServiceSuite) Test_CheckEmbedding_AllWellFormedAfterSeed() {
	ctx := context.Background()

	books := []bson.M{
		{"title": "1984", "authors": bson.A{bson.M{"_id": "author-1", "name": "George Orwell"}}},
		{"title": "Animal Farm", "authors": bson.A{bson.M{"_id": "author-1", "name": "George Orwell"}}},
	}
	authors := []bson.M{
		{"name": "George Orwell", "books": bson.A{"9780451524935", "9780452284241"}},
	}

	s.store.EXPECT().AllDocuments(ctx, repository.CollBooks).Return(books, nil)
	s.store.EXPECT().AllDocuments(ctx, repository.CollAuthors).Return(authors, nil)

	report, err := s.service.CheckEmbedding(ctx)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), report.TotalBooks, report.WellFormedBooks)
	assert.Equal(s.T(), report.TotalAuthors, report.AuthorsWithBooks)
}

func (s *verifyServiceSuite) Test_CheckEmbedding_ScanErrorIsFatal() {
	ctx := context.Background()
	queryErr := errors.New("cursor timeout")

	s.store.EXPECT().
		AllDocuments(ctx, repository.CollBooks).
		Return(nil, queryErr)

	_, err := s.service.CheckEmbedding(ctx)

	assert.ErrorIs(s.T(), err, queryErr)
}
