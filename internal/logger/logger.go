package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. Nil until Init is called; the helpers
// below are no-ops in that case.
var Logger *log.Logger

var rotator *lumberjack.Logger

// stderr receives a copy of every record when Debug is set.
var (
	stderr       io.Writer = os.Stderr
	mirrorStderr bool
)

// Config holds logger configuration.
type Config struct {
	Debug   bool
	DataDir string
}

// Path returns the log file location for a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "logs", "devrewind.log")
}

// Init sets up the rotating file logger. With Debug, records are also
// written to stderr, except while FileOnly is in effect.
func Init(cfg Config) error {
	logFile := Path(cfg.DataDir)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return err
	}

	rotator = &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	var writer io.Writer = rotator
	mirrorStderr = cfg.Debug
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(stderr, rotator)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "devrewind",
	})
	return nil
}

// FileOnly stops copying records to stderr until the returned function is
// called. Full-screen programs call it while they own the terminal.
func FileOnly() (restore func()) {
	if Logger == nil || rotator == nil {
		return func() {}
	}
	l, r := Logger, rotator
	l.SetOutput(r)
	return func() {
		if Logger == l && mirrorStderr {
			l.SetOutput(io.MultiWriter(stderr, r))
		}
	}
}

// Close flushes and closes the log file.
func Close() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	Logger = nil
	return err
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
