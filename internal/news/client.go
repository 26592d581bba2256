package news

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"
)

// defaultTimeout — таймаут общего HTTP-клиента.
const defaultTimeout = 15 * time.Second

var (
	sharedOnce   sync.Once
	sharedClient *http.Client
)

// SharedClient возвращает общий на процесс HTTP-клиент.
// Создаётся лениво при первом вызове и дальше только читается.
func SharedClient() *http.Client {
	sharedOnce.Do(func() {
		sharedClient = &http.Client{Timeout: defaultTimeout}
	})

	return sharedClient
}

// Option настраивает HTTP-реализации Service.
type Option func(*options)

type options struct {
	url    string
	client *http.Client
}

// WithURL задаёт адрес запроса вместо DefaultURL. Пустая строка игнорируется.
func WithURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.url = url
		}
	}
}

// WithClient задаёт собственный HTTP-клиент (таймауты, транспорт).
// nil — использовать SharedClient.
func WithClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{url: DefaultURL}
	for _, opt := range opts {
		opt(&o)
	}

	if o.client == nil {
		o.client = SharedClient()
	}

	return o
}

// get выполняет GET и вычитывает тело, чтобы соединение вернулось в пул.
// Статус ответа не проверяется: ошибкой считается только сбой транспорта.
// Ошибки возвращаются без обёрток — решение о них принимает вызывающий.
func get(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
