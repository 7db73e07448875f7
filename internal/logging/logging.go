// Package logging configures the zerolog logger shared by the process.
// The logger is constructed once at startup and passed to collaborators
// explicitly; nothing in this package holds global state.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the process logger: a console writer on stderr plus, when
// dir is non-empty, a per-day log file agent_YYYYMMDD.log in dir. The
// returned closer releases the file handle.
func Setup(dir string, verbose bool) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}

	var writer io.Writer = console
	closer := func() {}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("create log dir %s: %w", dir, err)
		}
		name := fmt.Sprintf("agent_%s.log", time.Now().Format("20060102"))
		file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = zerolog.MultiLevelWriter(console, file)
		closer = func() { file.Close() }
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}
