package mongo

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository" // Import the repository interfaces package
	"context"
	"errors" // Import the standard errors package

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "Users"

// withoutID is the projection shared by every read: callers never see _id.
var withoutID = bson.M{"_id": 0}

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new, not yet approved, non-admin user.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.UserName == "" {
		return errors.New("user name is required")
	}
	user.IsAdmin = domain.FlagNo
	user.IsRegistered = domain.FlagNo

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// Unique index on userName
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByUserName retrieves a user by user name.
func (r *mongoUserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	filter := bson.M{"userName": userName}

	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(withoutID)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns every user.
func (r *mongoUserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetPending returns the users still waiting for admin approval.
func (r *mongoUserRepository) GetPending(ctx context.Context) ([]domain.PendingUser, error) {
	pending := []domain.PendingUser{}
	filter := bson.M{"isRegistered": domain.FlagNo}
	projection := bson.M{"userName": 1, "isRegistered": 1, "_id": 0}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// UpdateDetails sets age, height and weight. Nil values are stored as null.
func (r *mongoUserRepository) UpdateDetails(ctx context.Context, userName string, details domain.UserDetails) error {
	filter := bson.M{"userName": userName}
	update := bson.M{
		"$set": bson.M{
			"age":    details.Age,
			"height": details.Height,
			"weight": details.Weight,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Register marks the user as approved.
func (r *mongoUserRepository) Register(ctx context.Context, userName string) error {
	filter := bson.M{"userName": userName}
	update := bson.M{"$set": bson.M{"isRegistered": domain.FlagYes}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	// ModifiedCount is 0 when the user was already approved, which is fine.
	return nil
}

// Delete removes a user by user name.
func (r *mongoUserRepository) Delete(ctx context.Context, userName string) (*repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName})
	if err != nil {
		return nil, err
	}
	return &repository.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// EnsureUserIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "isRegistered", Value: 1}}, // Pending approvals lookup
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
