package repository

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContentRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.ContentBlock, error)
	Upsert(ctx context.Context, block *entity.ContentBlock) error
}

type contentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContentRepository(db database.PgxIface, log *zap.Logger) ContentRepository {
	return &contentRepository{
		db:  db,
		log: log.With(zap.String("repository", "content")),
	}
}

func (r *contentRepository) FindByKey(ctx context.Context, key string) (*entity.ContentBlock, error) {
	query := `SELECT key, data, created_at, updated_at FROM content_blocks WHERE key = $1`

	var block entity.ContentBlock
	err := r.db.QueryRow(ctx, query, key).Scan(
		&block.Key,
		&block.Data,
		&block.CreatedAt,
		&block.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find content block",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find content block %s: %w", key, err)
	}

	return &block, nil
}

func (r *contentRepository) Upsert(ctx context.Context, block *entity.ContentBlock) error {
	query := `
		INSERT INTO content_blocks (key, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, block.Key, block.Data)
	if err != nil {
		r.log.Error("Failed to upsert content block",
			zap.Error(err),
			zap.String("key", block.Key),
		)
		return fmt.Errorf("upsert content block %s: %w", block.Key, err)
	}

	return nil
}
