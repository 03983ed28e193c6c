package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testApp() *application {
	cfg := config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func TestApplication_Routes(t *testing.T) {
	a := testApp()
	a.SetHTTPHandlers(pingHandler{})

	for path, want := range map[string]int{
		"/ping":    http.StatusNoContent,
		"/metrics": http.StatusOK,
		"/missing": http.StatusNotFound,
	} {
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rr.Code, path)
	}
}

func TestApplication_StarterFailure(t *testing.T) {
	a := testApp()
	boom := errors.New("warm-up failed")
	a.SetStarters(
		starterFunc(func(context.Context) error { return nil }),
		starterFunc(func(context.Context) error { return boom }),
	)

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApplication_StopJoinsCloseErrors(t *testing.T) {
	a := testApp()
	closed := 0
	boom := errors.New("close failed")
	a.SetClosers(
		closerFunc(func() error { closed++; return boom }),
		closerFunc(func() error { closed++; return nil }),
	)

	err := a.Stop()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, closed)
}
