package core

import (
	"fmt"
	"os"
)

// DefaultLogger writes formatted messages to standard output
type DefaultLogger struct{}

// Printf formats and prints a message followed by a newline
func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// SilentLogger discards all messages
type SilentLogger struct{}

// Printf discards the message
func (l *SilentLogger) Printf(format string, args ...interface{}) {
}
