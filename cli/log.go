package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BertoldVdb/rom-tools/romsig"
)

/* Diagnostics go to stderr so the report on stdout stays clean */
func newLogFunc(level int, noColor bool, output string) (romsig.LogFunc, func(), error) {
	if level <= 0 {
		return nil, func() {}, nil
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{output}
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if noColor {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, err
	}
	sugar := logger.Sugar()

	return func(l int, format string, param ...interface{}) {
		if l > level {
			return
		}
		sugar.With("level", l).Debugf(format, param...)
	}, func() { logger.Sync() }, nil
}
