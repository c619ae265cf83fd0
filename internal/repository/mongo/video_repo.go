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

const videoCollectionName = "Videos"

// mongoVideoRepository implements repository.VideoRepository
type mongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new Video repository backed by MongoDB.
func NewMongoVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &mongoVideoRepository{
		collection: db.Collection(videoCollectionName),
	}
}

// Create inserts a new video with a zero like count and returns it.
func (r *mongoVideoRepository) Create(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	if video.URL == "" {
		return nil, errors.New("video url is required")
	}

	created := *video
	created.LikeCount = 0

	_, err := r.collection.InsertOne(ctx, &created)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return &created, nil
}

// InsertMany bulk loads catalog entries, skipping urls that already exist.
func (r *mongoVideoRepository) InsertMany(ctx context.Context, videos []domain.Video) (int, error) {
	docs := make([]interface{}, len(videos))
	for i := range videos {
		docs[i] = videos[i]
	}
	return insertManySkippingDuplicates(ctx, r.collection, docs)
}

// GetByURL retrieves a video by its URL.
func (r *mongoVideoRepository) GetByURL(ctx context.Context, url string) (*domain.Video, error) {
	var video domain.Video
	err := r.collection.FindOne(ctx, bson.M{"url": url}, options.FindOne().SetProjection(withoutID)).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// Delete removes a video and returns the removed document.
func (r *mongoVideoRepository) Delete(ctx context.Context, url string) (*domain.Video, error) {
	var video domain.Video
	opts := options.FindOneAndDelete().SetProjection(withoutID)
	err := r.collection.FindOneAndDelete(ctx, bson.M{"url": url}, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// ChangeLikeCount atomically adds action to the like count and returns the
// updated video. The count is not clamped at zero.
func (r *mongoVideoRepository) ChangeLikeCount(ctx context.Context, url string, action domain.LikeAction) (*domain.Video, error) {
	if !action.Valid() {
		return nil, errors.New("like action must be +1 or -1")
	}

	var video domain.Video
	update := bson.M{"$inc": bson.M{"likeCount": int(action)}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutID)

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"url": url}, update, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// DecrementLikeCounts lowers the like count of every url by one in a single
// ordered bulk write and returns how many videos matched.
func (r *mongoVideoRepository) DecrementLikeCounts(ctx context.Context, urls []string) (int64, error) {
	if len(urls) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(urls))
	for _, url := range urls {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"url": url}).
			SetUpdate(bson.M{"$inc": bson.M{"likeCount": int(domain.LikeDown)}}))
	}

	result, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// uniqueVideo is the projection produced by each GetUnique facet.
type uniqueVideo struct {
	URL string `bson:"url"`
}

// GetUnique samples one video url per difficulty tier, easiest tier first.
// Tiers without videos are left out of the result.
func (r *mongoVideoRepository) GetUnique(ctx context.Context) ([]string, error) {
	facets := bson.D{}
	for _, difficulty := range domain.DifficultyOrder {
		facets = append(facets, bson.E{Key: difficulty, Value: bson.A{
			bson.M{"$match": bson.M{"difficulty": difficulty}},
			bson.M{"$sample": bson.M{"size": 1}},
			bson.M{"$project": bson.M{"_id": 0, "url": 1}},
		}})
	}
	pipeline := mongo.Pipeline{{{Key: "$facet", Value: facets}}}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []map[string][]uniqueVideo
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	urls := []string{}
	if len(results) == 0 {
		return urls, nil
	}
	for _, difficulty := range domain.DifficultyOrder {
		if sample := results[0][difficulty]; len(sample) > 0 {
			urls = append(urls, sample[0].URL)
		}
	}
	return urls, nil
}

// ListByBodyPart returns the videos targeting a body part, in natural order.
func (r *mongoVideoRepository) ListByBodyPart(ctx context.Context, bodyPart string) ([]domain.Video, error) {
	return r.find(ctx, bson.M{"bodyPart": bodyPart}, options.Find().SetProjection(withoutID))
}

// SortedByTitle returns the videos of a body part ordered A-Z, or Z-A when ascending is false.
func (r *mongoVideoRepository) SortedByTitle(ctx context.Context, bodyPart string, ascending bool) ([]domain.Video, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "title", Value: sortOrder(ascending)}}).
		SetProjection(withoutID)
	return r.find(ctx, bson.M{"bodyPart": bodyPart}, findOptions)
}

// SortedByLikeCount returns the videos of a body part, most liked first when highestFirst is set.
func (r *mongoVideoRepository) SortedByLikeCount(ctx context.Context, bodyPart string, highestFirst bool) ([]domain.Video, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "likeCount", Value: sortOrder(!highestFirst)}}).
		SetProjection(withoutID)
	return r.find(ctx, bson.M{"bodyPart": bodyPart}, findOptions)
}

// SortedByDifficulty orders the videos of a body part by their rank in the
// tier table rather than lexically.
func (r *mongoVideoRepository) SortedByDifficulty(ctx context.Context, bodyPart string, beginnerFirst bool) ([]domain.Video, error) {
	ranking := domain.DifficultyRanking(beginnerFirst)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"bodyPart": bodyPart}}},
		{{Key: "$addFields", Value: bson.M{
			"difficultyOrder": bson.M{"$indexOfArray": bson.A{ranking, "$difficulty"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "difficultyOrder", Value: 1}}}},
		{{Key: "$project", Value: bson.M{"difficultyOrder": 0, "_id": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *mongoVideoRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.Video, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func sortOrder(ascending bool) int {
	if ascending {
		return 1
	}
	return -1
}

// EnsureVideoIndexes creates necessary indexes for the videos collection.
func EnsureVideoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Listing and sorting are always scoped to a body part
			Keys:    bson.D{{Key: "bodyPart", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "difficulty", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
