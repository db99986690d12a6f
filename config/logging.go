package engineconfig

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// BuildLogger constructs a zap.Logger from c's LoggingConfig, ready to
// pass to ccsubdiv.SetLogger. An empty Level returns zap.NewNop(), the
// same silent default ccsubdiv starts with.
func BuildLogger(c LoggingConfig) (*zap.Logger, error) {
	if c.Level == "" {
		return zap.NewNop(), nil
	}

	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var writer zapcore.WriteSyncer
	if c.File != "" {
		writer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
		})
	} else {
		writer = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)
	return zap.New(core), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("engineconfig: unknown log level %q: %w", s, err)
	}
	return level, nil
}
