package seed

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"alcyxob/fitvideo/internal/storage"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type recordingQuoteRepo struct {
	inserted []domain.Quote
}

func (r *recordingQuoteRepo) GetRandom(context.Context) (domain.Quote, error) {
	return nil, errors.New("not used")
}

func (r *recordingQuoteRepo) InsertMany(_ context.Context, quotes []domain.Quote) (int, error) {
	r.inserted = append(r.inserted, quotes...)
	return len(quotes), nil
}

type videoRepository = repository.VideoRepository

// recordingVideoRepo only implements InsertMany; other methods are not reached.
type recordingVideoRepo struct {
	videoRepository
	inserted []domain.Video
	err      error
}

func (r *recordingVideoRepo) InsertMany(_ context.Context, videos []domain.Video) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.inserted = append(r.inserted, videos...)
	return len(videos), nil
}

const bundleJSON = `{
  "quotes": [{"quote": "Sweat is fat crying", "author": "Unknown"}],
  "videos": [
    {"url": "https://v/1", "title": "Squat", "difficulty": "Beginner", "bodyPart": "legs", "likeCount": 42},
    {"url": "https://v/2", "title": "Pistol", "difficulty": "Advanced", "bodyPart": "legs"},
    {"url": "", "title": "Broken", "difficulty": "Beginner"},
    {"url": "https://v/3", "title": "Odd", "difficulty": "Expert"}
  ]
}`

func newSeeder(t *testing.T, content string) (*Seeder, *recordingQuoteRepo, *recordingVideoRepo) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bundle.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	quotes, videos := &recordingQuoteRepo{}, &recordingVideoRepo{}
	return NewSeeder(storage.NewLocalSource(dir), quotes, videos), quotes, videos
}

func TestSeederRun(t *testing.T) {
	seeder, quotes, videos := newSeeder(t, bundleJSON)

	result, err := seeder.Run(context.Background(), "bundle.json")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.QuotesInserted != 1 || result.VideosInserted != 2 || result.VideosSkipped != 2 {
		t.Errorf("unexpected result %+v", result)
	}
	if quotes.inserted[0]["author"] != "Unknown" {
		t.Errorf("unexpected quote %v", quotes.inserted[0])
	}
	for _, v := range videos.inserted {
		if v.LikeCount != 0 {
			t.Errorf("video %s seeded with likeCount %d", v.URL, v.LikeCount)
		}
	}
}

func TestSeederRunErrors(t *testing.T) {
	seeder, _, _ := newSeeder(t, bundleJSON)
	if _, err := seeder.Run(context.Background(), "missing.json"); !errors.Is(err, storage.ErrObjectNotFound) {
		t.Errorf("expected ErrObjectNotFound, got %v", err)
	}

	seeder, _, _ = newSeeder(t, `{"videos": [`)
	if _, err := seeder.Run(context.Background(), "bundle.json"); err == nil {
		t.Error("expected decode error")
	}

	seeder, _, videos := newSeeder(t, bundleJSON)
	boom := errors.New("write concern")
	videos.err = boom
	if _, err := seeder.Run(context.Background(), "bundle.json"); !errors.Is(err, boom) {
		t.Errorf("expected insert error, got %v", err)
	}
}
