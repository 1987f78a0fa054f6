package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the standard logger for this project: production levels,
// console encoding, ISO8601 timestamps.
func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	t, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return t.Sugar()
}
