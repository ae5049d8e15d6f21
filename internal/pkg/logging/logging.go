package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultConfig logs JSON to stderr so stdout stays reserved for
// extracted records.
func DefaultConfig() zap.Config {
	logConf := zap.NewProductionConfig()
	logConf.Sampling = nil
	logConf.OutputPaths = []string{"stderr"}
	logConf.ErrorOutputPaths = []string{"stderr"}
	logConf.EncoderConfig.TimeKey = "time"
	logConf.EncoderConfig.LevelKey = "severity"
	logConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConf.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return logConf
}

func ParseLevel(l string) (zapcore.Level, error) {
	return zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(l)))
}
