package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/libs/option"
	"go.uber.org/zap"
)

type Backend struct {
	Ctx        context.Context
	Logger     *zap.Logger
	httpServer *HttpServer
}

func NewBackend(opts *option.Options) (*Backend, error) {
	httpServer, err := NewHttpServer(opts)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Ctx:        context.Background(),
		Logger:     logs.GetLogger("http_backend"),
		httpServer: httpServer,
	}, nil
}

func (m *Backend) AddGroup(group string, middleware ...echo.MiddlewareFunc) {
	m.httpServer.AddGroup(group, middleware...)
}

func (m *Backend) AddPostHandler(group string, h IHandler) {
	m.httpServer.Post(h.GetName(), group, h)
}

func (m *Backend) AddGetHandler(group string, h IHandler) {
	m.httpServer.Get(h.GetName(), group, h)
}

func (m *Backend) AddHandler(method, path string, h IHandler) {
	m.httpServer.Handle(method, path, h)
}

func (m *Backend) Engine() *echo.Echo {
	return m.httpServer.Engine()
}

func (m *Backend) Startup() error {
	return m.httpServer.Startup()
}

func (m *Backend) Stop() {
	m.httpServer.Stop()
}
