package mongo

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userLikeCollectionName = "UsersLike"

// mongoUserLikeRepository implements repository.UserLikeRepository.
// Each document records one (userName, url) pair.
type mongoUserLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoUserLikeRepository creates a new UsersLike repository backed by MongoDB.
func NewMongoUserLikeRepository(db *mongo.Database) repository.UserLikeRepository {
	return &mongoUserLikeRepository{
		collection: db.Collection(userLikeCollectionName),
	}
}

// Add records that userName liked url.
func (r *mongoUserLikeRepository) Add(ctx context.Context, userName, url string) error {
	if userName == "" || url == "" {
		return errors.New("user name and url are required")
	}
	_, err := r.collection.InsertOne(ctx, domain.UserLike{UserName: userName, URL: url})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// Remove deletes a single like.
func (r *mongoUserLikeRepository) Remove(ctx context.Context, userName, url string) (*repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName, "url": url})
	if err != nil {
		return nil, err
	}
	return &repository.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// GetURLsByUser returns the urls liked by a user. The slice is empty, not nil,
// when the user liked nothing.
func (r *mongoUserLikeRepository) GetURLsByUser(ctx context.Context, userName string) ([]string, error) {
	projection := bson.M{"url": 1, "_id": 0}
	cursor, err := r.collection.Find(ctx, bson.M{"userName": userName}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []domain.UserLike
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(likes))
	for _, like := range likes {
		urls = append(urls, like.URL)
	}
	return urls, nil
}

// DeleteByUser removes every like of a user.
func (r *mongoUserLikeRepository) DeleteByUser(ctx context.Context, userName string) (*repository.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"userName": userName})
	if err != nil {
		return nil, err
	}
	return &repository.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// EnsureUserLikeIndexes creates necessary indexes for the likes collection.
func EnsureUserLikeIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userName", Value: 1}, {Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
