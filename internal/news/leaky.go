package news

import (
	"context"
	"net/http"
)

var _ Service = (*LeakyHTTPService)(nil)

// LeakyHTTPService — антипример: ошибка net/http (*url.Error) уходит
// вызывающему без изменений, и тот вынужден знать о транспорте.
// Используйте HTTPService.
type LeakyHTTPService struct {
	url    string
	client *http.Client
}

// NewLeakyHTTPService создаёт LeakyHTTPService.
func NewLeakyHTTPService(opts ...Option) *LeakyHTTPService {
	o := buildOptions(opts)

	return &LeakyHTTPService{url: o.url, client: o.client}
}

// GetLatestNews возвращает транспортную ошибку как есть.
func (s *LeakyHTTPService) GetLatestNews(ctx context.Context) ([]Item, error) {
	if err := get(ctx, s.client, s.url); err != nil {
		return nil, err
	}

	return placeholder(), nil
}
