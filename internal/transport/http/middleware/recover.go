package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/news-encapsulation/internal/transport/http/apierrors"
	"github.com/pribylovaa/news-encapsulation/pkg/log"
)

// Recover перехватывает panic и отвечает 500/internal.
// Детали паники на клиент не уходят.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
						slog.String("path", r.URL.Path),
						slog.Any("reason", rec),
					)
					apierrors.WriteError(w, r, fmt.Errorf("panic"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
