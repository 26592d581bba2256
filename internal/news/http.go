package news

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/news-encapsulation/pkg/log"
)

const fetchFailedMsg = "http client failed to retrieve the news"

var _ Service = (*HTTPService)(nil)

// HTTPService — корректная реализация Service.
//
// Любой сбой транспорта перехватывается на границе и превращается
// в *ServiceError с исходной ошибкой в Cause().
type HTTPService struct {
	url    string
	client *http.Client
}

// NewHTTPService создаёт HTTPService. Без WithClient используется SharedClient.
func NewHTTPService(opts ...Option) *HTTPService {
	o := buildOptions(opts)

	return &HTTPService{url: o.url, client: o.client}
}

// GetLatestNews запрашивает источник и возвращает последние новости.
//
// Ошибки:
//   - *ServiceError (errors.Is(err, ErrUnavailable)) — источник недоступен.
func (s *HTTPService) GetLatestNews(ctx context.Context) ([]Item, error) {
	const op = "news.HTTPService.GetLatestNews"

	if err := get(ctx, s.client, s.url); err != nil {
		log.From(ctx).Warn("news_fetch_failed",
			slog.String("op", op),
			slog.String("url", s.url),
			slog.String("err", err.Error()),
		)
		return nil, NewServiceError(fetchFailedMsg, err)
	}

	return placeholder(), nil
}
