// news описывает абстракцию новостного сервиса и её HTTP-реализации.
//
// Вызывающий код зависит только от интерфейса Service и обрабатывает
// единственный вид ошибки — доменную (*ServiceError / ErrUnavailable).
// HTTPService соблюдает этот контракт, LeakyHTTPService — нет: он отдаёт
// наружу транспортную ошибку net/http как есть и оставлен как антипример.
package news

import (
	"context"
	"fmt"
)

// DefaultURL — адрес, к которому обращаются реализации по умолчанию.
// Адрес заведомо недоступен: это фикстура, а не реальная интеграция.
const DefaultURL = "http://someWrongAdress831"

// Имена реализаций для New и конфигурации.
const (
	ImplWrapped = "wrapped"
	ImplLeaky   = "leaky"
)

// Item — одна новость. Никакой структуры, кроме строки текста.
type Item string

// Service — абстракция источника последних новостей.
//
// Требования к реализации:
//  1. единственный вид ошибки, который видит вызывающий, — доменный
//     (errors.Is(err, ErrUnavailable) / errors.As(err, **ServiceError));
//  2. транспортные ошибки не должны пересекать границу интерфейса;
//  3. реализация обязана уважать ctx (отмена/таймауты).
type Service interface {
	GetLatestNews(ctx context.Context) ([]Item, error)
}

// placeholder — фиксированный ответ вместо разбора реального контента.
func placeholder() []Item {
	return []Item{
		"A chicken crossed the road",
		"Science says turtles are friendly",
	}
}

// New возвращает реализацию Service по имени impl (ImplWrapped, ImplLeaky).
func New(impl string, opts ...Option) (Service, error) {
	switch impl {
	case ImplWrapped:
		return NewHTTPService(opts...), nil
	case ImplLeaky:
		return NewLeakyHTTPService(opts...), nil
	default:
		return nil, fmt.Errorf("news.New: %w: %q", ErrUnknownImpl, impl)
	}
}
