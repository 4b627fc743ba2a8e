// Package runlog is a convenience logger for the program hosting the
// aggregation service. It wraps a worker handle with the familiar
// Printf/Println shapes plus a debug toggle, so the host can narrate its
// own progress through the same pipeline the workers use.
package runlog

import (
	"fmt"

	"github.com/RKO-solver/parlog/aggregator"
)

const (
	errorPrefix = "ERROR: "
	debugPrefix = "DEBUG: "
)

// StdLogger is a logger that will mimic fmt.Printf or fmt.Println.
type StdLogger interface {
	Printf(format string, args ...interface{})
	Println(s interface{})
}

// ErrLogger is a logger that will log at error level.
type ErrLogger interface {
	Errorf(format string, args ...interface{})
	Errorln(s interface{})
}

// DebugLogger is a logger that will log at standard level but only if the
// debug toggle is turned on.
type DebugLogger interface {
	Debugf(format string, args ...interface{})
	Debugln(s interface{})
	DebugOn(on bool)
}

// Logger is a fully implemented host logger. It must have Std, Err and
// Debug logging.
type Logger interface {
	StdLogger
	ErrLogger
	DebugLogger
}

// RunLogger sends host messages through a worker handle. The debug bool
// dictates if debug logging will be produced.
type RunLogger struct {
	debug  bool
	handle *aggregator.Handle
}

// New requires a handle from the aggregation manager to forward logs to.
func New(handle *aggregator.Handle) *RunLogger {
	return &RunLogger{
		handle: handle,
	}
}

// Printf mimics the functionality of fmt.Printf.
func (rl *RunLogger) Printf(format string, args ...interface{}) {
	rl.handle.Logf(format, args...)
}

// Println mimics the functionality of fmt.Println.
func (rl *RunLogger) Println(s interface{}) {
	rl.handle.Log(s)
}

// Errorf mimics the functionality of fmt.Printf and marks the line as an
// error.
func (rl *RunLogger) Errorf(format string, args ...interface{}) {
	rl.handle.Logf(errorPrefix+format, args...)
}

// Errorln mimics the functionality of fmt.Println and marks the line as an
// error.
func (rl *RunLogger) Errorln(s interface{}) {
	rl.handle.Log(errorPrefix + fmt.Sprint(s))
}

// Debugf mimics the functionality of fmt.Printf if the debug toggle is
// true.
func (rl *RunLogger) Debugf(format string, args ...interface{}) {
	if rl.debug {
		rl.handle.Logf(debugPrefix+format, args...)
	}
}

// Debugln mimics the functionality of fmt.Println if the debug toggle is
// true.
func (rl *RunLogger) Debugln(s interface{}) {
	if rl.debug {
		rl.handle.Log(debugPrefix + fmt.Sprint(s))
	}
}

// DebugOn is used to turn debug logging on and off.
func (rl *RunLogger) DebugOn(on bool) {
	rl.debug = on
}
