package logging

import (
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Logs always go to stderr, stdout carries the MCP stdio transport
const output = "stderr"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a logger at the given level ("debug", "info", "warn" or
// "error"). The development encoder writes human-readable lines, otherwise
// entries are JSON with ISO8601 timestamps. Standard library log output is
// redirected into the returned logger.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}

	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, weather.ErrInternalServerError.Withf("logger: %v", err)
	}
	zap.RedirectStdLog(logger)
	return logger, nil
}

// ParseLevel returns the level for a name, defaulting to info when empty
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, weather.ErrBadParameter.Withf("log level %q", level)
	}
}

// OrNop returns the logger, or a no-op logger when nil
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
