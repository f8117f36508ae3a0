package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"

	"go.uber.org/zap"
)

// Content keys the site frontend renders. Writes to other keys are rejected
// so a typo in the admin UI cannot create orphan blocks.
var knownContentKeys = map[string]bool{
	"hero":     true,
	"about":    true,
	"schedule": true,
	"pricing":  true,
	"contact":  true,
	"faq":      true,
}

type ContentService interface {
	Get(ctx context.Context, key string) (*entity.ContentBlock, error)
	Upsert(ctx context.Context, key string, data json.RawMessage) (*entity.ContentBlock, error)
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

func (s *contentService) Get(ctx context.Context, key string) (*entity.ContentBlock, error) {
	block, err := s.repo.Content.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, fmt.Errorf("key %s: %w", key, entity.ErrContentNotFound)
	}
	return block, nil
}

func (s *contentService) Upsert(ctx context.Context, key string, data json.RawMessage) (*entity.ContentBlock, error) {
	if !knownContentKeys[key] {
		return nil, fmt.Errorf("%w: unknown content key %s", entity.ErrInvalidInput, key)
	}
	if len(data) == 0 || !json.Valid(data) {
		return nil, fmt.Errorf("%w: content data is not valid JSON", entity.ErrInvalidInput)
	}

	block := &entity.ContentBlock{
		Key:  key,
		Data: data,
	}

	if err := s.repo.Content.Upsert(ctx, block); err != nil {
		return nil, err
	}

	s.log.Info("Content block updated", zap.String("key", key))

	return block, nil
}
