package logs

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogger(t *testing.T) {
	configMap := map[string]interface{}{
		"filename":   "logs/test.log",
		"maxsize":    10,
		"maxbackups": 1,
		"maxage":     1,
	}
	conf, err := json.Marshal(configMap)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	Init(conf, zapcore.InfoLevel)

	Log.Info("This is an info message")
	Log.Warn("This is a warning message")
	Log.Error("This is an error message")
}

func TestGetLoggerWithoutInit(t *testing.T) {
	Log = nil
	logger := GetLogger("dial")
	if logger == nil {
		t.Fatal("expected a logger from default configuration")
	}
	logger.Info("module scoped message")
}
