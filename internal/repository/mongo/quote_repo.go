package mongo

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const quoteCollectionName = "Quotes"

type mongoQuoteRepository struct {
	collection *mongo.Collection
}

// NewMongoQuoteRepository creates a new Quote repository backed by MongoDB.
func NewMongoQuoteRepository(db *mongo.Database) repository.QuoteRepository {
	return &mongoQuoteRepository{
		collection: db.Collection(quoteCollectionName),
	}
}

// GetRandom samples a single quote server-side.
func (r *mongoQuoteRepository) GetRandom(ctx context.Context) (domain.Quote, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": 1}}},
		{{Key: "$project", Value: withoutID}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []domain.Quote
	if err = cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, repository.ErrNotFound
	}
	return quotes[0], nil
}

// InsertMany loads reference quotes.
func (r *mongoQuoteRepository) InsertMany(ctx context.Context, quotes []domain.Quote) (int, error) {
	docs := make([]interface{}, len(quotes))
	for i := range quotes {
		docs[i] = quotes[i]
	}
	return insertManySkippingDuplicates(ctx, r.collection, docs)
}
