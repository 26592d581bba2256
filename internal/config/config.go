// config предоставляет структуру конфигурации newsreader
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/pribylovaa/news-encapsulation/internal/news"
)

// Config — корневая конфигурация.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	News     NewsConfig    `yaml:"news"`
	HTTP     HTTPConfig    `yaml:"http"`
	GRPC     GRPCConfig    `yaml:"grpc"`
	Health   HealthConfig  `yaml:"health"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// NewsConfig — источник новостей и выбор реализации.
type NewsConfig struct {
	// URL источника. Пусто — news.DefaultURL.
	URL string `yaml:"url" env:"NEWS_URL"`
	// Impl — "wrapped" или "leaky".
	Impl string `yaml:"impl" env:"NEWS_IMPL" env-default:"wrapped"`
}

// HealthConfig — периодическая проверка источника для gRPC health.
type HealthConfig struct {
	Interval time.Duration `yaml:"interval" env:"HEALTH_INTERVAL" env-default:"30s"`
}

// TimeoutConfig — таймауты.
type TimeoutConfig struct {
	// Request — дедлайн одного запроса новостей.
	Request time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"5s"`
	// Shutdown — время на graceful shutdown серверов.
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// GRPCConfig — сетевые настройки gRPC-сервера (health).
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50053"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		return readFile(path)
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return readFile("local.yaml")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	switch c.News.Impl {
	case news.ImplWrapped, news.ImplLeaky:
	default:
		return fmt.Errorf("news.impl must be %q or %q, got %q", news.ImplWrapped, news.ImplLeaky, c.News.Impl)
	}
	if c.Health.Interval <= 0 {
		return fmt.Errorf("health.interval must be > 0")
	}
	if c.Timeouts.Request <= 0 {
		return fmt.Errorf("timeouts.request must be > 0")
	}
	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("timeouts.shutdown must be > 0")
	}
	return nil
}
