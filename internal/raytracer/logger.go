package raytracer

import "fmt"

// Logger receives status and progress lines.
type Logger interface {
	Printf(format string, args ...any)
}

// StdoutLogger writes to stdout.
type StdoutLogger struct{}

func (StdoutLogger) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
