package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// FileName is the active log inside the log directory
	FileName = "tidebreak.log"

	// MaxSize triggers rotation of the active log on startup
	MaxSize = 10 * 1024 * 1024

	rotateLayout = "20060102_150405"
)

// ParseLevel maps a config level name onto zerolog, unknown names fall back to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup builds the process logger
// Without debug nothing is written anywhere, the terminal belongs to the game
// With debug both zerolog and the standard logger append to dir/FileName
// The returned file is nil when debug is off, the caller closes it otherwise
func Setup(debug bool, dir, level string) (zerolog.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	logger := zerolog.New(f).Level(ParseLevel(level)).With().Timestamp().Logger()
	logger.Info().Str("path", path).Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, f, nil
}

// rotate moves an oversized log aside with a timestamp suffix
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s_%s%s", strings.TrimSuffix(path, ext), now.Format(rotateLayout), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotating log file: %w", err)
	}
	return nil
}
