package service

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"errors"
)

var ErrNoQuotes = errors.New("no quotes available")

type QuoteService interface {
	RandomQuote(ctx context.Context) (domain.Quote, error)
}

type quoteService struct {
	quoteRepo repository.QuoteRepository
}

// NewQuoteService creates a new instance of quoteService.
func NewQuoteService(quoteRepo repository.QuoteRepository) QuoteService {
	return &quoteService{quoteRepo: quoteRepo}
}

func (s *quoteService) RandomQuote(ctx context.Context) (domain.Quote, error) {
	quote, err := s.quoteRepo.GetRandom(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoQuotes
		}
		return nil, err
	}
	return quote, nil
}
