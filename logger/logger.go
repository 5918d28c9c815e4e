package logger

import (
	"fmt"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/statekit/actions.go/configuration"
	"github.com/statekit/actions.go/ierrors"
	"github.com/statekit/actions.go/syncutils"
)

// Logger instances are used to log messages. They are safe for concurrent use.
type Logger = zap.SugaredLogger

// Level is a logging priority. Higher levels are more important.
type Level = zapcore.Level

const (
	// LevelDebug logs are typically voluminous, and are usually disabled in production.
	LevelDebug = zapcore.DebugLevel
	// LevelInfo is the default logging priority.
	LevelInfo = zapcore.InfoLevel
	// LevelWarn logs are more important than Info, but don't need individual human review.
	LevelWarn = zapcore.WarnLevel
	// LevelError logs are high-priority. If an application is running smoothly, it shouldn't generate any error-level logs.
	LevelError = zapcore.ErrorLevel
	// LevelPanic logs a message, then panics.
	LevelPanic = zapcore.PanicLevel
	// LevelFatal logs a message, then calls os.Exit(1).
	LevelFatal = zapcore.FatalLevel
)

// ErrGlobalLoggerAlreadyInitialized is returned when InitGlobalLogger is called more than once.
var ErrGlobalLoggerAlreadyInitialized = ierrors.New("global logger already initialized")

var (
	mu          syncutils.Mutex
	initialized atomic.Bool
	logger      *Logger

	level = zap.NewAtomicLevel()
)

// InitGlobalLogger initializes the global logger from the provided configuration.
func InitGlobalLogger(config *configuration.Configuration) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized.Load() {
		return ErrGlobalLoggerAlreadyInitialized
	}

	root, err := NewRootLoggerFromConfiguration(config, level)
	if err != nil {
		return err
	}

	logger = root
	initialized.Store(true)

	return nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the provided configuration.
func NewRootLoggerFromConfiguration(config *configuration.Configuration, levelOverride ...zap.AtomicLevel) (*Logger, error) {
	cfg := DefaultCfg

	// get config values one by one
	// config.UnmarshalKey does not recognize a configuration group when defined with pflags
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if val := config.Get(ConfigurationKeyDisableCaller); val != nil {
		cfg.DisableCaller = val.(bool)
	}
	if val := config.Get(ConfigurationKeyDisableStacktrace); val != nil {
		cfg.DisableStacktrace = val.(bool)
	}
	if val := config.String(ConfigurationKeyStacktraceLevel); val != "" {
		cfg.StacktraceLevel = val
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}
	if val := config.Get(ConfigurationKeyDisableEvents); val != nil {
		cfg.DisableEvents = val.(bool)
	}

	return NewRootLogger(cfg, levelOverride...)
}

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config, levelOverride ...zap.AtomicLevel) (*Logger, error) {
	var (
		cores []zapcore.Core
		opts  []zap.Option
	)

	// create the level
	lvl := zap.NewAtomicLevel()
	if len(levelOverride) >= 1 {
		lvl = levelOverride[0]
	}
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	// create the encoder config
	encCfg := defaultEncoderConfig
	switch cfg.EncodingConfig.EncodeTime {
	case "nanos":
		encCfg.EncodeTime = zapcore.EpochNanosTimeEncoder
	case "millis":
		encCfg.EncodeTime = zapcore.EpochMillisTimeEncoder
	case "iso8601":
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	case "rfc3339nano":
		encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}

	// create the encoder
	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown encoding: %s", cfg.Encoding)
	}

	// open the output files
	writer, _, err := zap.Open(cfg.OutputPaths...)
	if err != nil {
		return nil, err
	}
	cores = append(cores, zapcore.NewCore(encoder, writer, lvl))

	// create the core that publishes log messages as events
	if !cfg.DisableEvents {
		cores = append(cores, NewEventCore(lvl))
	}

	// create the options
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	if !cfg.DisableStacktrace {
		stacktraceLevel := zap.NewAtomicLevel()
		if err := stacktraceLevel.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
			return nil, err
		}
		opts = append(opts, zap.AddStacktrace(stacktraceLevel))
	}

	return zap.New(zapcore.NewTee(cores...), opts...).Sugar(), nil
}

// NewLogger returns a new named child of the global root logger.
func NewLogger(name string) *Logger {
	if !initialized.Load() {
		panic("global logger not initialized")
	}

	return logger.Named(name)
}

// SetLevel alters the logging level of the global loggers.
func SetLevel(l Level) {
	level.SetLevel(l)
}
