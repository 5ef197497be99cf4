package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger for an applet. Records go to w
// without timestamps, prefixed with the applet name.
func NewLogger(w io.Writer, applet string, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          applet,
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
