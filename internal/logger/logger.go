package logger

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config builds the production zap config. The level comes from LOG_LEVEL as
// a zap numeric level (-1 debug, 0 info, 1 warn, 2 error), defaulting to info.
func Config() zap.Config {
	level := zapcore.InfoLevel
	if n, err := strconv.Atoi(os.Getenv("LOG_LEVEL")); err == nil {
		level = zapcore.Level(n)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.CallerKey = "ln"
	zapCfg.EncoderConfig.FunctionKey = ""
	zapCfg.EncoderConfig.LevelKey = "severity"
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	return zapCfg
}

// New builds the process logger and installs it as the zap global.
// The returned func restores the previous globals and flushes.
func New() (*zap.Logger, func()) {
	lg, err := Config().Build()
	if err != nil {
		log.Fatalf("fail to init logger, error: %v", err)
	}

	undo := zap.ReplaceGlobals(lg)
	return lg, func() {
		undo()
		_ = lg.Sync()
	}
}
