// internal/repository/mongo/session_repo.go
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

const userSessionCollectionName = "UserSessions"

// mongoUserSessionRepository implements repository.UserSessionRepository
type mongoUserSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoUserSessionRepository creates a new UserSession repository.
func NewMongoUserSessionRepository(db *mongo.Database) repository.UserSessionRepository {
	return &mongoUserSessionRepository{
		collection: db.Collection(userSessionCollectionName),
	}
}

// Create inserts the initial session for a user.
func (r *mongoUserSessionRepository) Create(ctx context.Context, userName string) error {
	if userName == "" {
		return errors.New("user name is required to create a session")
	}
	_, err := r.collection.InsertOne(ctx, domain.NewUserSession(userName))
	return err
}

// GetByUserName retrieves the session of a user.
func (r *mongoUserSessionRepository) GetByUserName(ctx context.Context, userName string) (*domain.UserSession, error) {
	var session domain.UserSession
	filter := bson.M{"userName": userName}
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(withoutID)).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// UpdateVideos replaces the whole video queue.
func (r *mongoUserSessionRepository) UpdateVideos(ctx context.Context, userName string, videos []string) (*domain.UserSession, error) {
	if videos == nil {
		videos = []string{}
	}
	return r.findOneAndUpdate(ctx, userName, bson.M{"$set": bson.M{"videos": videos}})
}

// UpdateFinished sets the finished flag.
func (r *mongoUserSessionRepository) UpdateFinished(ctx context.Context, userName string, finished bool) (*domain.UserSession, error) {
	return r.findOneAndUpdate(ctx, userName, bson.M{"$set": bson.M{"finished": finished}})
}

// UpdateCheck sets checks[index] in a single pipeline update. Slots between the
// current end of the array and index are filled with false, as are null holes.
func (r *mongoUserSessionRepository) UpdateCheck(ctx context.Context, userName string, value bool, index int) (*domain.UserSession, error) {
	if index < 0 {
		return nil, errors.New("check index must not be negative")
	}

	checks := bson.M{"$ifNull": bson.A{"$checks", bson.A{}}}
	size := bson.M{"$max": bson.A{bson.M{"$size": checks}, index + 1}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"checks": bson.M{
				"$map": bson.M{
					"input": bson.M{"$range": bson.A{0, size}},
					"as":    "i",
					"in": bson.M{"$cond": bson.A{
						bson.M{"$eq": bson.A{"$$i", index}},
						value,
						bson.M{"$ifNull": bson.A{bson.M{"$arrayElemAt": bson.A{checks, "$$i"}}, false}},
					}},
				},
			},
		}}},
	}
	return r.findOneAndUpdate(ctx, userName, update)
}

// ResetChecks empties the checks array.
func (r *mongoUserSessionRepository) ResetChecks(ctx context.Context, userName string) (*domain.UserSession, error) {
	return r.findOneAndUpdate(ctx, userName, bson.M{"$set": bson.M{"checks": bson.A{}}})
}

// IncrementCompleteSessions adds one to the completed sessions counter.
func (r *mongoUserSessionRepository) IncrementCompleteSessions(ctx context.Context, userName string) (*domain.UserSession, error) {
	return r.findOneAndUpdate(ctx, userName, bson.M{"$inc": bson.M{"completesessions": 1}})
}

// IncrementOpenedSessions adds one to the opened sessions counter.
func (r *mongoUserSessionRepository) IncrementOpenedSessions(ctx context.Context, userName string) (*domain.UserSession, error) {
	return r.findOneAndUpdate(ctx, userName, bson.M{"$inc": bson.M{"openedsessions": 1}})
}

// Delete removes the session of a user.
func (r *mongoUserSessionRepository) Delete(ctx context.Context, userName string) (*repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName})
	if err != nil {
		return nil, err
	}
	return &repository.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// findOneAndUpdate applies update to the user's session and returns the post-image.
func (r *mongoUserSessionRepository) findOneAndUpdate(ctx context.Context, userName string, update interface{}) (*domain.UserSession, error) {
	var session domain.UserSession
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutID)

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"userName": userName}, update, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// EnsureUserSessionIndexes creates necessary indexes for the sessions collection.
func EnsureUserSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// One session per user is assumed by every update
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
