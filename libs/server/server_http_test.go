package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sergesha/langflow/libs/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type HelloReq struct {
	Name string `json:"name" validate:"required"`
}

type HelloResp struct {
	Message string `json:"message"`
}

func newTestServer(t *testing.T) *HttpServer {
	t.Helper()
	opts := &option.Options{
		Http: option.Http{
			Address: "127.0.0.1",
			Port:    0,
			Path:    "/",
		},
	}
	srv, err := NewHttpServer(opts)
	require.NoError(t, err)
	return srv
}

func TestHandlerBindAndValidate(t *testing.T) {
	srv := newTestServer(t)
	h := NewHandler(
		"hello",
		[]string{"greet"},
		func(ctx echo.Context, req HelloReq, resp HelloResp) error {
			resp.Message = "hello " + req.Name
			return ctx.JSON(http.StatusOK, resp)
		},
	)
	srv.Handle(http.MethodPost, "hello", h)

	req := httptest.NewRequest(http.MethodPost, "/api/hello", strings.NewReader(`{"name":"dial"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello dial")

	// missing required field fails validation
	req = httptest.NewRequest(http.MethodPost, "/api/hello", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	srv := newTestServer(t)
	h := NewHandler(
		"ping",
		nil,
		func(ctx echo.Context, req struct{}, resp struct{}) error {
			return ctx.NoContent(http.StatusOK)
		},
	)
	srv.Handle(http.MethodGet, "ping", h)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get(RequestIDKey))

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(RequestIDKey, "fixed-id")
	rec = httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get(RequestIDKey))
}

func TestPathMustStartWithSlash(t *testing.T) {
	opts := &option.Options{Http: option.Http{Path: "api"}}
	_, err := NewHttpServer(opts)
	assert.Error(t, err)
}
