package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Debug   bool
	DataDir string
}

// New creates a logger writing to a rotating file under DataDir/logs.
// In debug mode output is mirrored to stderr at debug level.
func New(cfg Config) (*log.Logger, error) {
	logDir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "respite.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	var writer io.Writer = fileWriter
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	l := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
	})
	l.SetLevel(level)
	return l, nil
}
