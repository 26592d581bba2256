// metrics — Prometheus-метрики обращений к news.Service.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pribylovaa/news-encapsulation/internal/news"
)

// Исходы обращения к news.Service (label "outcome").
const (
	OutcomeOK          = "ok"
	OutcomeDomainError = "domain_error"
	OutcomeLeakedError = "leaked_error"
)

// Metrics — набор метрик обращений к источнику новостей.
type Metrics struct {
	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New создаёт метрики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "news_fetch_total",
				Help: "Total number of latest news requests by implementation and outcome",
			},
			[]string{"impl", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "news_fetch_duration_seconds",
				Help:    "Latest news request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"impl"},
		),
	}

	reg.MustRegister(m.fetches, m.duration)

	return m
}

// Outcome классифицирует результат вызова news.Service.
// Ошибка, не являющаяся доменной, считается утечкой.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case news.IsDomain(err):
		return OutcomeDomainError
	default:
		return OutcomeLeakedError
	}
}

// RecordFetch фиксирует один вызов.
func (m *Metrics) RecordFetch(impl string, err error, dur time.Duration) {
	m.fetches.WithLabelValues(impl, Outcome(err)).Inc()
	m.duration.WithLabelValues(impl).Observe(dur.Seconds())
}

// Instrument оборачивает svc сбором метрик. Результат и ошибка
// возвращаются без изменений.
func Instrument(svc news.Service, impl string, m *Metrics) news.Service {
	return &instrumented{next: svc, impl: impl, m: m}
}

type instrumented struct {
	next news.Service
	impl string
	m    *Metrics
}

func (s *instrumented) GetLatestNews(ctx context.Context) ([]news.Item, error) {
	start := time.Now()
	items, err := s.next.GetLatestNews(ctx)
	s.m.RecordFetch(s.impl, err, time.Since(start))

	return items, err
}
