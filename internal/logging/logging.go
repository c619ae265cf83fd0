package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"alcyxob/fitvideo/internal/config"
)

const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
	timeFormat        = "2006-01-02 15:04:05"
)

// Setup sets the global log level and writers: console always, plus a
// rotating file when cfg.File is set. The returned closer flushes the file.
func Setup(cfg config.LogConfig) io.Closer {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()

	if cfg.File == "" {
		return nopCloser{}
	}
	if err := ensureLogDir(cfg.File); err != nil {
		log.Error().Err(err).Str("path", cfg.File).Msg("Failed to prepare log directory; logging to console only")
		return nopCloser{}
	}

	fileWriter := newFileWriter(cfg)
	fileConsole := zerolog.ConsoleWriter{Out: fileWriter, TimeFormat: timeFormat, NoColor: true}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, fileConsole)).With().Timestamp().Logger()
	return fileWriter
}

// ParseLevel maps a level name to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func newFileWriter(cfg config.LogConfig) *lumberjack.Logger {
	maxSize, maxBackups, maxAge := DefaultMaxSizeMB, DefaultMaxBackups, DefaultMaxAgeDays
	if cfg.MaxSizeMB > 0 {
		maxSize = cfg.MaxSizeMB
	}
	if cfg.MaxBackups >= 0 {
		maxBackups = cfg.MaxBackups
	}
	if cfg.MaxAgeDays >= 0 {
		maxAge = cfg.MaxAgeDays
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
