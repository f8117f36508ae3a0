package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"studio-booking/internal/dto/response"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxContentBodyBytes = 1 << 20

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// Get handles GET /api/content/{key}
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	block, err := h.service.Get(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.log, err, "get content")
		return
	}

	utils.ResponseSuccess(w, "Content retrieved", response.ContentResponse{
		Key:  block.Key,
		Data: block.Data,
	})
}

// Upsert handles PUT /api/admin/content/{key}
func (h *ContentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	data, err := io.ReadAll(io.LimitReader(r.Body, maxContentBodyBytes))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read request body", nil)
		return
	}

	block, err := h.service.Upsert(r.Context(), key, json.RawMessage(data))
	if err != nil {
		handleServiceError(w, h.log, err, "update content")
		return
	}

	utils.ResponseSuccess(w, "Content updated", response.ContentResponse{
		Key:  block.Key,
		Data: block.Data,
	})
}
