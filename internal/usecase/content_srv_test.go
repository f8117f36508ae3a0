package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"studio-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentService_Get_NotFound(t *testing.T) {
	svc := NewContentService(newTestRepo(nil, nil, nil), zap.NewNop())

	_, err := svc.Get(context.Background(), "hero")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrContentNotFound)
}

func TestContentService_Upsert_RoundTrip(t *testing.T) {
	repo := newTestRepo(nil, nil, nil)
	svc := NewContentService(repo, zap.NewNop())

	data := json.RawMessage(`{"headline":"Find your flow"}`)
	_, err := svc.Upsert(context.Background(), "hero", data)
	require.NoError(t, err)

	block, err := svc.Get(context.Background(), "hero")
	require.NoError(t, err)
	assert.JSONEq(t, `{"headline":"Find your flow"}`, string(block.Data))
}

func TestContentService_Upsert_UnknownKey(t *testing.T) {
	svc := NewContentService(newTestRepo(nil, nil, nil), zap.NewNop())

	_, err := svc.Upsert(context.Background(), "typo-key", json.RawMessage(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestContentService_Upsert_InvalidJSON(t *testing.T) {
	svc := NewContentService(newTestRepo(nil, nil, nil), zap.NewNop())

	_, err := svc.Upsert(context.Background(), "hero", json.RawMessage(`{"broken":`))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
