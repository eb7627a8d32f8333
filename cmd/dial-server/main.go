package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sergesha/langflow/libs/conf"
	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/libs/option"
	"github.com/sergesha/langflow/libs/server"
	"github.com/sergesha/langflow/services"
	"go.uber.org/zap/zapcore"
)

func initLogging(opts *option.Options) {
	level, err := zapcore.ParseLevel(opts.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	loggerConf, _ := json.Marshal(map[string]any{
		"filename":   filepath.Join(opts.Log.Path, "dial-server.log"),
		"maxsize":    60,
		"maxbackups": 5,
		"maxage":     7,
		"compress":   true,
	})
	logs.Init(loggerConf, level)
}

func main() {
	opts := option.NewOptions()
	if err := opts.Parse(); err != nil {
		os.Exit(1)
	}
	initLogging(opts)
	if opts.ConfigFile != "" {
		conf.Load(opts.ConfigFile)
	}

	srv, err := server.NewServer(opts)
	if err != nil {
		logs.Errorf("create server: %v", err)
		os.Exit(1)
	}

	svc, err := services.NewDialService(opts)
	if err != nil {
		logs.Errorf("create dial service: %v", err)
		os.Exit(1)
	}
	svc.Start()

	srv.HandleSignal()
	svc.Stop()
}
