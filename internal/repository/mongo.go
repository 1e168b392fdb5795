package repository

import (
	"context"
	"errors"
	"library_seeder/internal/model"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names as they exist in the database.
const (
	CollBooks        = "books"
	CollAuthors      = "authors"
	CollUsers        = "users"
	CollReviews      = "reviews"
	CollIssueDetails = "issueDetails"
)

type Mongo struct {
	db *mongo.Database
}

func NewMongoRepo(db *mongo.Database) *Mongo {
	return &Mongo{db}
}

// EnsureAuthor inserts the author unless one with the same name already
// exists. The check and the insert run as one upsert, so two seeding runs
// racing each other cannot create duplicates. Returns the resolved id and
// whether this call created the record.
func (r *Mongo) EnsureAuthor(ctx context.Context, author model.Author) (string, bool, error) {
	op := "Mongo.EnsureAuthor"

	newID := uuid.NewString()
	update := bson.M{"$setOnInsert": bson.M{
		"_id":        newID,
		"name":       author.Name,
		"searchName": author.SearchName,
		"aliases":    author.Aliases,
		"bio":        author.Bio,
		"books":      author.Books,
	}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var resolved model.Author
	err := r.db.Collection(CollAuthors).
		FindOneAndUpdate(ctx, bson.M{"name": author.Name}, update, opts).
		Decode(&resolved)
	if err != nil {
		slog.Error(
			"Failed to ensure author",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("name", author.Name),
		)
		return "", false, err
	}

	created := resolved.ID == newID
	slog.Info(
		"Author ensured",
		slog.String("op", op),
		slog.String("name", author.Name),
		slog.String("id", resolved.ID),
		slog.Bool("created", created),
	)
	return resolved.ID, created, nil
}

func (r *Mongo) AppendAuthorBook(ctx context.Context, authorID, isbn string) error {
	op := "Mongo.AppendAuthorBook"

	_, err := r.db.Collection(CollAuthors).UpdateOne(
		ctx,
		bson.M{"_id": authorID},
		bson.M{"$addToSet": bson.M{"books": isbn}},
	)
	if err != nil {
		slog.Error(
			"Failed to append book to author",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("authorID", authorID),
			slog.String("isbn", isbn),
		)
		return err
	}
	return nil
}

func (r *Mongo) CountDocuments(ctx context.Context, collection string) (int64, error) {
	op := "Mongo.CountDocuments"

	count, err := r.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Error(
			"Failed to count documents",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("collection", collection),
		)
		return 0, err
	}
	return count, nil
}

// SampleDocument returns one arbitrary document from the collection.
func (r *Mongo) SampleDocument(ctx context.Context, collection string) (bson.M, error) {
	op := "Mongo.SampleDocument"

	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocuments
		}
		slog.Error(
			"Failed to sample document",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("collection", collection),
		)
		return nil, err
	}
	return doc, nil
}

// AllDocuments returns every document in the collection as raw maps. The
// verifier inspects record structure, so no typed decode happens here.
func (r *Mongo) AllDocuments(ctx context.Context, collection string) ([]bson.M, error) {
	op := "Mongo.AllDocuments"

	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		slog.Error(
			"Failed to scan collection",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("collection", collection),
		)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		slog.Error(
			"Failed to decode collection scan",
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("collection", collection),
		)
		return nil, err
	}
	return docs, nil
}
