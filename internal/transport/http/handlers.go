package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/news-encapsulation/internal/news"
	"github.com/pribylovaa/news-encapsulation/internal/transport/http/apierrors"
)

// NewsReader — то, что нужно хендлерам от reader.Reader.
type NewsReader interface {
	Latest(ctx context.Context) ([]news.Item, error)
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	Reader NewsReader
}

// NewHandlers создаёт хендлеры поверх читателя новостей.
func NewHandlers(rd NewsReader) *Handlers {
	return &Handlers{Reader: rd}
}

// LatestNewsResponse — тело ответа GET /news.
type LatestNewsResponse struct {
	Items []news.Item `json:"items"`
}

// LatestNews — GET /news.
func (h *Handlers) LatestNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.Reader.Latest(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if items == nil {
		items = []news.Item{}
	}

	writeJSON(w, http.StatusOK, LatestNewsResponse{Items: items})
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
