// Package logger builds the application's zerolog logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Builder accumulates logger destinations before Make constructs the
// logger. With neither a path nor a writer configured, logs go to stdout.
type Builder struct {
	writer io.Writer
	path   string
	file   *os.File
}

func New() *Builder {
	return &Builder{}
}

// ToPath appends log lines to the file at path.
func (b *Builder) ToPath(path string) *Builder {
	b.path = path
	return b
}

// ToWriter sends log lines to w. Ignored when a path is set.
func (b *Builder) ToWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// Make constructs the logger with timestamps enabled.
func (b *Builder) Make() (zerolog.Logger, error) {
	writer := b.writer
	if writer == nil {
		writer = os.Stdout
	}
	if b.path != "" {
		file, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Logger{}, err
		}
		b.file = file
		writer = zerolog.SyncWriter(file)
	}
	return zerolog.New(writer).With().Timestamp().Logger(), nil
}

// Close releases the log file when Make opened one.
func (b *Builder) Close() error {
	if b.file != nil {
		return b.file.Close()
	}
	return nil
}
