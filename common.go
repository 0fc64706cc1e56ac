// ABOUTME: Shared initialization code for all run modes
// ABOUTME: Provides debug logging setup, run options, and the progress logger adapter

package main

import (
	"fmt"
	"log"
	"os"

	"scaffolder/solver"
)

// debugLog writes debug lines to file when enabled via SetupDebugLog.
var debugLog *log.Logger

// RunOptions configures a single solve run.
type RunOptions struct {
	LinksPath  string
	OutputPath string
	Options    solver.Options
}

// SetupDebugLog initializes debug logging to the given file.
func SetupDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)
	return nil
}

// debugf logs debug messages to file if debug logging is enabled.
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// stdoutLogger adapts *log.Logger to solver.Logger so verbose solver
// progress lines print with a "[i]" prefix the way the original tool's
// printf calls did.
type stdoutLogger struct {
	*log.Logger
}

func newStdoutLogger() stdoutLogger {
	return stdoutLogger{log.New(os.Stdout, "[i] ", 0)}
}
