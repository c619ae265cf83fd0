package seed

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"alcyxob/fitvideo/internal/storage"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Bundle is the JSON document loaded into the reference collections.
type Bundle struct {
	Quotes []domain.Quote `json:"quotes"`
	Videos []domain.Video `json:"videos"`
}

// Result summarizes a seeding run. Entries already present are not counted
// as inserted.
type Result struct {
	QuotesInserted int
	VideosInserted int
	VideosSkipped  int
}

// Seeder loads bundles from an object source into the Quotes and Videos collections.
type Seeder struct {
	source    storage.ObjectSource
	quoteRepo repository.QuoteRepository
	videoRepo repository.VideoRepository
}

func NewSeeder(source storage.ObjectSource, quoteRepo repository.QuoteRepository, videoRepo repository.VideoRepository) *Seeder {
	return &Seeder{source: source, quoteRepo: quoteRepo, videoRepo: videoRepo}
}

// Load reads and decodes the bundle stored under key.
func (s *Seeder) Load(ctx context.Context, key string) (*Bundle, error) {
	rc, err := s.source.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open bundle %s: %w", key, err)
	}
	defer rc.Close()

	var bundle Bundle
	if err := json.NewDecoder(rc).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", key, err)
	}
	return &bundle, nil
}

// Run loads the bundle under key and inserts its content. Videos without a
// url or with an unknown difficulty are skipped; like counts always start at 0.
func (s *Seeder) Run(ctx context.Context, key string) (*Result, error) {
	bundle, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	videos := make([]domain.Video, 0, len(bundle.Videos))
	for _, v := range bundle.Videos {
		if v.URL == "" || !domain.IsValidDifficulty(v.Difficulty) {
			log.Warn().Str("url", v.URL).Str("difficulty", v.Difficulty).Msg("Skipping invalid video")
			result.VideosSkipped++
			continue
		}
		v.LikeCount = 0
		videos = append(videos, v)
	}

	if len(bundle.Quotes) > 0 {
		if result.QuotesInserted, err = s.quoteRepo.InsertMany(ctx, bundle.Quotes); err != nil {
			return nil, fmt.Errorf("insert quotes: %w", err)
		}
	}
	if len(videos) > 0 {
		if result.VideosInserted, err = s.videoRepo.InsertMany(ctx, videos); err != nil {
			return nil, fmt.Errorf("insert videos: %w", err)
		}
	}

	log.Info().
		Str("bundle", key).
		Int("quotes", result.QuotesInserted).
		Int("videos", result.VideosInserted).
		Int("skipped", result.VideosSkipped).
		Msg("Seed bundle loaded")
	return result, nil
}
