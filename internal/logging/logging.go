// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr so command output on
// stdout stays machine-readable.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "nodekey"})

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
