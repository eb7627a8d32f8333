package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/libs/option"
	"go.uber.org/zap"
)

type Server struct {
	Ctx    context.Context
	opts   *option.Options
	cancel context.CancelFunc
	logger *zap.Logger
	doneCh chan os.Signal
}

func NewServer(opts *option.Options) (*Server, error) {
	ctx, cancel := context.WithCancel(context.TODO())

	doneCh := make(chan os.Signal, 1)
	signal.Notify(doneCh, syscall.SIGINT, syscall.SIGTERM)

	srv := &Server{
		Ctx:    ctx,
		opts:   opts,
		cancel: cancel,
		logger: logs.GetLogger("Server"),
		doneCh: doneCh,
	}
	return srv, nil
}

func (m *Server) HandleSignal() {
	<-m.doneCh
	m.cancel()
	m.logger.Info("server shutting...")
	m.logger.Info("server shutdown completed")
}
