// Package dual fans every message out to the terminal and logfile sinks so
// a run can be watched live while a parseable copy lands on disk. The two
// sub sinks are isolated from each other: a failure in one never stops the
// message from being attempted on the other.
package dual

import (
	"errors"
	"strings"

	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
	"github.com/RKO-solver/parlog/logsink/logfile"
	"github.com/RKO-solver/parlog/logsink/terminal"
)

const (
	// SinkTag will be used to call this package
	SinkTag = "dual"
)

// Dual composes a terminal sink and a logfile sink.
type Dual struct {
	term logsink.Sink
	file logsink.Sink
}

func init() {
	logsink.RegisterSink(SinkTag, func() logsink.Sink {
		return New()
	})
}

// New will return a new pointer to a Dual sink wired to the real terminal
// and logfile engines.
func New() *Dual {
	return &Dual{
		term: terminal.New(),
		file: logfile.New(),
	}
}

// RegisterConfig forwards the configuration to both sub sinks. The logfile
// section is the one that matters; the terminal sink has nothing to
// configure.
func (d *Dual) RegisterConfig(conf configfile.SinkConfig) error {
	if err := d.term.RegisterConfig(conf); err != nil {
		return err
	}
	return d.file.RegisterConfig(conf)
}

// Start starts both sub sinks.
func (d *Dual) Start() error {
	if err := d.term.Start(); err != nil {
		return err
	}
	return d.file.Start()
}

// Write sends the message to the terminal first and then to the file. Both
// writes are always attempted; errors are collected and joined so the
// caller still learns about partial failures.
func (d *Dual) Write(msg logsink.Message) error {
	failures := make([]string, 0, 2)
	if err := d.term.Write(msg); err != nil {
		failures = append(failures, err.Error())
	}
	if err := d.file.Write(msg); err != nil {
		failures = append(failures, err.Error())
	}

	if len(failures) > 0 {
		return errors.New(strings.Join(failures, " | "))
	}
	return nil
}

// Shutdown shuts both sub sinks down and reports their combined outcome on
// a preloaded channel.
func (d *Dual) Shutdown() chan error {
	failures := make([]string, 0, 2)
	if err := <-d.term.Shutdown(); err != nil {
		failures = append(failures, err.Error())
	}
	if err := <-d.file.Shutdown(); err != nil {
		failures = append(failures, err.Error())
	}

	ch := make(chan error, 1)
	if len(failures) > 0 {
		ch <- errors.New(strings.Join(failures, " | "))
	} else {
		ch <- nil
	}
	close(ch)
	return ch
}
