// reader — потребитель news.Service.
//
// Reader знает только интерфейс и доменную ошибку: при недоступности новостей
// он логирует причину, уведомляет пользователя и возвращает ErrNoNews.
// Любая другая ошибка считается утечкой абстракции и пробрасывается как есть.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pribylovaa/news-encapsulation/internal/news"
	"github.com/pribylovaa/news-encapsulation/pkg/log"
)

// ErrNoNews — новости сейчас недоступны, пользователь уведомлён.
var ErrNoNews = errors.New("latest news are unavailable")

// unavailableNotice — текст уведомления пользователю.
const unavailableNotice = "Latest news are temporarily unavailable, please try again later."

// Notifier доставляет пользователю сообщение о сбое.
type Notifier interface {
	Notify(ctx context.Context, msg string) error
}

// LogNotifier — Notifier по умолчанию: пишет уведомление в лог.
type LogNotifier struct{}

// Notify пишет msg в лог уровня Warn.
func (LogNotifier) Notify(ctx context.Context, msg string) error {
	log.From(ctx).Warn("reader_notify", slog.String("msg", msg))
	return nil
}

// Reader читает последние новости через news.Service.
type Reader struct {
	svc      news.Service
	notifier Notifier
}

// New создаёт Reader. nil notifier заменяется на LogNotifier.
func New(svc news.Service, notifier Notifier) *Reader {
	if notifier == nil {
		notifier = LogNotifier{}
	}

	return &Reader{svc: svc, notifier: notifier}
}

// Latest возвращает последние новости.
//
// Ошибки:
//   - ErrNoNews — сервис вернул доменную ошибку (пользователь уведомлён);
//   - прочее — ошибка, которую сервис не должен был выпускать наружу.
func (r *Reader) Latest(ctx context.Context) ([]news.Item, error) {
	const op = "reader.Latest"

	items, err := r.svc.GetLatestNews(ctx)
	if err == nil {
		return items, nil
	}

	lg := log.From(ctx)

	var se *news.ServiceError
	if errors.As(err, &se) {
		attrs := []any{
			slog.String("op", op),
			slog.String("err", se.Error()),
		}
		if cause := se.Cause(); cause != nil {
			attrs = append(attrs, slog.String("cause", cause.Error()))
		}
		lg.Warn("news_unavailable", attrs...)

		if nerr := r.notifier.Notify(ctx, unavailableNotice); nerr != nil {
			lg.Error("reader_notify_failed",
				slog.String("op", op),
				slog.String("err", nerr.Error()),
			)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrNoNews)
	}

	lg.Error("news_unexpected_error",
		slog.String("op", op),
		slog.String("type", fmt.Sprintf("%T", err)),
		slog.String("err", err.Error()),
	)

	return nil, fmt.Errorf("%s: %w", op, err)
}

// Print пишет последние новости в w, по одной на строку.
func (r *Reader) Print(ctx context.Context, w io.Writer) error {
	const op = "reader.Print"

	items, err := r.Latest(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return fmt.Errorf("%s: write: %w", op, err)
		}
	}

	return nil
}
