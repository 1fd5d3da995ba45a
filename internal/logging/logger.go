// Package logging provides the verbose-mode diagnostic output used while
// compiling a pattern and while preprocessing/enumerating against a text.
// The surface (Section/Log/Enabled) mirrors the teacher repository's
// internal/compiler/logger.go, backed by github.com/projectdiscovery/gologger
// instead of raw fmt.Fprintf so verbose runs get the same leveled,
// timestamped output as the rest of the pack's CLI tools.
package logging

import "github.com/projectdiscovery/gologger"

// Logger reports verbose progress (pkg/varspan logs pattern-compilation
// statistics and the preprocessed DAG size through it), gated by Enabled.
type Logger struct {
	enabled bool
}

// New returns a Logger that emits through gologger's default writer when
// enabled is true, and is a no-op otherwise.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled}
}

// Enabled reports whether verbose output is turned on.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Section announces the start of a named phase (parsing, preprocessing,
// enumeration) at Info level.
func (l *Logger) Section(name string) {
	if !l.Enabled() {
		return
	}
	gologger.Info().Msgf("=== %s ===", name)
}

// Log emits a formatted verbose message at Verbose level.
func (l *Logger) Log(format string, args ...interface{}) {
	if !l.Enabled() {
		return
	}
	gologger.Verbose().Msgf(format, args...)
}

// Warn emits a formatted warning, regardless of Enabled (warnings are
// surfaced unconditionally, mirroring gologger's own severity model).
func (l *Logger) Warn(format string, args ...interface{}) {
	gologger.Warning().Msgf(format, args...)
}
