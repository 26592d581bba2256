package apierrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/news-encapsulation/internal/news"
	"github.com/pribylovaa/news-encapsulation/internal/reader"
)

func TestToHTTP_Mapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"no_news", fmt.Errorf("reader.Latest: %w", reader.ErrNoNews), http.StatusServiceUnavailable, "unavailable"},
		{"service_error", news.NewServiceError("x", errors.New("dial")), http.StatusServiceUnavailable, "unavailable"},
		{"bare_sentinel", news.ErrUnavailable, http.StatusInternalServerError, "internal"},
		{"leaked", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("no such host")}, http.StatusInternalServerError, "internal"},
		{"leaked_deadline", fmt.Errorf("reader.Latest: %w", &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}), http.StatusInternalServerError, "internal"},
		{"leaked_canceled", &url.Error{Op: "Get", URL: "http://x", Err: context.Canceled}, http.StatusInternalServerError, "internal"},
		{"deadline", fmt.Errorf("op: %w", context.DeadlineExceeded), http.StatusInternalServerError, "internal"},
		{"plain", errors.New("x"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_NoDetailsLeak(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("X-Request-Id", "rid-7")

	WriteError(rr, req, &url.Error{Op: "Get", URL: news.DefaultURL, Err: errors.New("no such host")})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NotContains(t, rr.Body.String(), "no such host")
	require.NotContains(t, rr.Body.String(), news.DefaultURL)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "rid-7", resp.Error.RequestID)
}
