package services

import (
	"context"

	"go.uber.org/zap"
)

// Service 接口
// 统一所有服务的行为
// Init 可选参数，具体服务可自定义
// Start/Stop/IsRunning 通用

type Service interface {
	Init(config ...interface{})
	Start()
	Stop()
	IsRunning() bool
}

type BaseService struct {
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	isRun  bool
}

func (bs *BaseService) Stop() {}

func (bs *BaseService) Start() {}

func (bs *BaseService) IsRunning() bool { return bs.isRun }
