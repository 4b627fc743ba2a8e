// Package devnull is a black hole sink. It implements the interface to be a
// sink but will discard every message it gets. Useful for load testing the
// aggregation path without paying for any I/O.
package devnull

import (
	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
)

const (
	// SinkTag is the tag that should be used in config files to access this sink
	SinkTag = "devnull"
)

// DevNull is a discard sink. It will not process messages.
type DevNull struct {
	running bool
}

func init() {
	logsink.RegisterSink(SinkTag, func() logsink.Sink {
		return &DevNull{}
	})
}

// RegisterConfig does nothing here.
func (d *DevNull) RegisterConfig(_ configfile.SinkConfig) error {
	return nil
}

// Start satisfies the logsink.Sink interface but effectively does nothing.
func (d *DevNull) Start() error {
	d.running = true
	return nil
}

// Write satisfies the logsink.Sink interface but discards the message.
func (d *DevNull) Write(_ logsink.Message) error {
	return nil
}

// Shutdown satisfies the logsink.Sink interface but effectively does nothing.
func (d *DevNull) Shutdown() chan error {
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	d.running = false
	return ch
}
