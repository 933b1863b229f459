// Package debug provides env-gated diagnostic output for digest.
//
// Output is enabled by DIGEST_DEBUG (any non-empty value) or --verbose and
// always goes to stderr so it never mixes with a digest on stdout.
package debug

import (
	"fmt"
	"os"
	"time"
)

var (
	enabled     = os.Getenv("DIGEST_DEBUG") != ""
	verboseMode = false
	quietMode   = false
)

func Enabled() bool {
	return enabled || verboseMode
}

// SetVerbose enables verbose/debug output
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetQuiet enables quiet mode (suppress non-essential output)
func SetQuiet(quiet bool) {
	quietMode = quiet
}

func Logf(format string, args ...interface{}) {
	if enabled || verboseMode {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// PrintNormal prints output unless quiet mode is enabled
func PrintNormal(format string, args ...interface{}) {
	if !quietMode {
		fmt.Printf(format, args...)
	}
}

// Timed logs how long an operation took. Use with defer:
//
//	defer debug.Timed("aha GET features", time.Now())
func Timed(what string, start time.Time) {
	Logf("[debug] %s took %s\n", what, time.Since(start).Round(time.Millisecond))
}
