package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "PANEL_DEBUG"

var (
	logger *zap.Logger
	writer *lumberjack.Logger
	mu     sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	logger = zap.New(core)
	writer = w
	return nil
}

// Logger returns the debug logger. The first call initializes it from
// PANEL_DEBUG; without it the returned logger discards everything.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err == nil {
			return logger
		}
	}
	logger = zap.NewNop()
	return logger
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		_ = logger.Sync()
	}
	logger = nil
	if writer != nil {
		err := writer.Close()
		writer = nil
		return err
	}
	return nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
