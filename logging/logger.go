package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls how the application logger is built.
type Options struct {
	Production bool
	Level      string
	Filename   string
}

// New builds a zap logger. When Filename is set, JSON logs are also written to a
// rotating file next to the console output.
func New(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, err
		}
	}

	if opts.Filename == "" {
		var zapConfig zap.Config
		if opts.Production {
			zapConfig = zap.NewProductionConfig()
		} else {
			zapConfig = zap.NewDevelopmentConfig()
		}
		zapConfig.Level = level
		zapConfig.OutputPaths = []string{"stdout"}
		return zapConfig.Build(zap.AddCaller())
	}

	rotation := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if opts.Production {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(rotation), level),
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level),
	)
	return zap.New(core, zap.AddCaller()), nil
}
