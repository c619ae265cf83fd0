package mongo

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestQuoteRepository_GetRandom(t *testing.T) {
	mt := newMockT(t)

	mt.Run("sampled quote", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.Quotes", mtest.FirstBatch, bson.D{
			{Key: "text", Value: "Keep going."},
			{Key: "author", Value: "Coach"},
		}))
		repo := NewMongoQuoteRepository(mt.DB)

		quote, err := repo.GetRandom(context.Background())
		if err != nil {
			mt.Fatalf("GetRandom returned error: %v", err)
		}
		if quote["text"] != "Keep going." {
			mt.Errorf("unexpected quote %v", quote)
		}
		if _, ok := quote["_id"]; ok {
			mt.Error("quote should not carry _id")
		}
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.Quotes", mtest.FirstBatch))
		repo := NewMongoQuoteRepository(mt.DB)

		if _, err := repo.GetRandom(context.Background()); !errors.Is(err, repository.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestQuoteRepository_InsertMany(t *testing.T) {
	mt := newMockT(t)

	mt.Run("inserts all", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))
		repo := NewMongoQuoteRepository(mt.DB)

		n, err := repo.InsertMany(context.Background(), []domain.Quote{{"text": "a"}, {"text": "b"}})
		if err != nil {
			mt.Fatalf("InsertMany returned error: %v", err)
		}
		if n != 2 {
			mt.Errorf("inserted = %d, want 2", n)
		}
	})
}
