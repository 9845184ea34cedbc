// Package logger builds the zap logger for srep and srepd
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EnvProd = "prod"

// New: в prod - JSON в logFile (или в stderr, если файл не задан), иначе консольный development-логгер
func New(env, logFile string) (*zap.Logger, error) {
	switch env {
	case EnvProd:
		writer := zapcore.Lock(os.Stderr)
		if logFile != "" {
			if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
				return nil, err
			}
			file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, err
			}
			writer = zapcore.AddSync(file)
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			writer,
			zap.InfoLevel,
		)
		return zap.New(core), nil

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		return zapCfg.Build()
	}
}
