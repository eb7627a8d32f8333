package services

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergesha/langflow/components/dial"
	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/libs/option"
	"github.com/sergesha/langflow/libs/server"
	"github.com/sergesha/langflow/protocol"
)

const ErrCodeBuildFailed = 1001

type UpdateConfigRequest struct {
	Field string      `json:"field" validate:"required"`
	Value interface{} `json:"value"`
}

type BuildResponse struct {
	Deployment  string  `json:"deployment"`
	Temperature float64 `json:"temperature"`
	Stream      bool    `json:"stream"`
	MaxTokens   int64   `json:"max_tokens"` // 0 means unbounded
}

// DialService exposes one component instance over HTTP, standing in for the
// host framework: schema rendering, field-change refresh, live deployments
// and a build check.
type DialService struct {
	BaseService
	component *dial.Component
	backend   *server.Backend
}

var _ Service = (*DialService)(nil)

func NewDialService(opts *option.Options) (*DialService, error) {
	backend, err := server.NewBackend(opts)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &DialService{
		BaseService: BaseService{
			logger: logs.GetLogger("dialService"),
			ctx:    ctx,
			cancel: cancel,
		},
		component: dial.NewComponentWithDefaults(dial.Defaults{
			Host:       opts.Dial.Host,
			APIVersion: opts.Dial.ApiVersion,
		}),
		backend: backend,
	}
	s.registerRoutes()
	return s, nil
}

func (s *DialService) Init(config ...interface{}) {}

func (s *DialService) Start() {
	s.isRun = true
	go func() {
		if err := s.backend.Startup(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http backend stopped", logs.ErrorInfo(err))
		}
	}()
}

func (s *DialService) Stop() {
	s.backend.Stop()
	s.cancel()
	s.isRun = false
}

func (s *DialService) Backend() *server.Backend { return s.backend }

func (s *DialService) registerRoutes() {
	schemaHandler := server.NewHandler(
		"schema",
		[]string{"component"},
		func(c echo.Context, req struct{}, resp struct{}) error {
			return protocol.OK(c, s.component.Schema())
		},
	)
	s.backend.AddHandler(http.MethodGet, "schema", schemaHandler)

	configHandler := server.NewHandler(
		"config",
		[]string{"component"},
		func(c echo.Context, req UpdateConfigRequest, resp struct{}) error {
			schema := s.component.UpdateConfig(c.Request().Context(), req.Field, req.Value)
			return protocol.OK(c, schema)
		},
	)
	s.backend.AddHandler(http.MethodPost, "config", configHandler)

	deploymentsHandler := server.NewHandler(
		"deployments",
		[]string{"component"},
		func(c echo.Context, req struct{}, resp struct{}) error {
			return protocol.OK(c, s.component.Models(c.Request().Context()))
		},
	)
	s.backend.AddHandler(http.MethodGet, "deployments", deploymentsHandler)

	buildHandler := server.NewHandler(
		"build",
		[]string{"component"},
		func(c echo.Context, req struct{}, resp struct{}) error {
			model, err := s.component.Build()
			if err != nil {
				return protocol.Fail(c, ErrCodeBuildFailed, err.Error())
			}
			return protocol.OK(c, BuildResponse{
				Deployment:  model.Deployment(),
				Temperature: model.Temperature(),
				Stream:      model.Streaming(),
				MaxTokens:   model.MaxTokens(),
			})
		},
	)
	s.backend.AddHandler(http.MethodPost, "build", buildHandler)
}
