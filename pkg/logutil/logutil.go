// Package logutil provides loggers for other packages. Logging is off
// by default and turned on for the whole process with SetOutput.
package logutil

import (
	"io"
	"log"
)

// Discard is a Logger that ignores all loggings.
var Discard = log.New(io.Discard, "", 0)

var (
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix, writing to the output
// set by SetOutput.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger
// to the given writer.
func SetOutput(w io.Writer) {
	out = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}
