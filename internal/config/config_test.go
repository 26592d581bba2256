package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile — утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// chdir — смена текущего рабочего каталога с автоматическим откатом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// Полный корректный YAML (не зависит от дефолтов).
const sampleYAML = `
env: "prod"
news:
  url: "http://news.example/latest"
  impl: "leaky"
http:
  host: "127.0.0.1"
  port: "9000"
grpc:
  host: "127.0.0.1"
  port: "6000"
health:
  interval: "1m"
timeouts:
  request: "2s"
  shutdown: "3s"
`

// Минимально валидный YAML — всё из дефолтов.
const minimalYAML = `
env: "dev"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
news:
  impl: ["wrapped"
`

// TestAddr — Addr() корректно собирает host:port.
func TestAddr(t *testing.T) {
	t.Parallel()
	require.Equal(t, "127.0.0.1:50051", GRPCConfig{Host: "127.0.0.1", Port: "50051"}.Addr())
	require.Equal(t, "[::1]:8080", HTTPConfig{Host: "::1", Port: "8080"}.Addr())
}

// TestLoad_WithExplicitPath_OK — явный путь имеет высший приоритет.
func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeFile(t, t.TempDir(), "config.yaml", sampleYAML))
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "http://news.example/latest", cfg.News.URL)
	require.Equal(t, "leaky", cfg.News.Impl)
	require.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr())
	require.Equal(t, "127.0.0.1:6000", cfg.GRPC.Addr())
	require.Equal(t, time.Minute, cfg.Health.Interval)
	require.Equal(t, 2*time.Second, cfg.Timeouts.Request)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Shutdown)
}

// TestLoad_Minimal_Defaults — незаданные поля берутся из env-default.
func TestLoad_Minimal_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeFile(t, t.TempDir(), "config.yaml", minimalYAML))
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Empty(t, cfg.News.URL)
	require.Equal(t, "wrapped", cfg.News.Impl)
	require.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.Equal(t, "0.0.0.0:50053", cfg.GRPC.Addr())
	require.Equal(t, 30*time.Second, cfg.Health.Interval)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Request)
	require.Equal(t, 10*time.Second, cfg.Timeouts.Shutdown)
}

// TestLoad_BrokenYAML — ошибка парсинга пробрасывается.
func TestLoad_BrokenYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeFile(t, t.TempDir(), "config.yaml", brokenYAML))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

// TestLoad_MissingFile — несуществующий путь.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

// TestLoad_Validate — некорректные значения отклоняются.
func TestLoad_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "unknown impl", yaml: "news:\n  impl: \"sloppy\"\n", want: "news.impl"},
		{name: "negative health interval", yaml: "health:\n  interval: \"-1s\"\n", want: "health.interval"},
		{name: "negative request timeout", yaml: "timeouts:\n  request: \"-2s\"\n", want: "timeouts.request"},
		{name: "negative shutdown timeout", yaml: "timeouts:\n  shutdown: \"-1s\"\n", want: "timeouts.shutdown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeFile(t, t.TempDir(), "config.yaml", tt.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestLoad_ConfigPathEnv — путь из CONFIG_PATH.
func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
}

// TestLoad_LocalYAML — ./local.yaml подхватывается без явного пути.
func TestLoad_LocalYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	dir := t.TempDir()
	writeFile(t, dir, "local.yaml", sampleYAML)
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "leaky", cfg.News.Impl)
}

// TestLoad_EnvOnly — без файлов конфигурация читается из ENV.
func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("NEWS_IMPL", "leaky")
	t.Setenv("NEWS_URL", "http://env.example")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "leaky", cfg.News.Impl)
	require.Equal(t, "http://env.example", cfg.News.URL)
	require.Equal(t, 750*time.Millisecond, cfg.Timeouts.Request)
}

// TestMustLoad_Panics — MustLoad паникует на ошибке.
func TestMustLoad_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
