// Package terminal is a sink that prints to the stdout of the process
// hosting the aggregation service. Writes go straight to the file
// descriptor with no buffering in between, so lines from concurrently
// running workers can never sit in a buffer and get lost at process exit.
package terminal

import (
	"io"
	"os"

	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
)

const (
	// SinkTag will be used to call this package
	SinkTag = "terminal"
)

// Terminal is a sink that will output to the local stdout.
type Terminal struct {
	out io.Writer
}

func init() {
	logsink.RegisterSink(SinkTag, func() logsink.Sink {
		return New()
	})
}

// New will return a new pointer to a Terminal sink.
func New() *Terminal {
	return &Terminal{out: os.Stdout}
}

// RegisterConfig does nothing here.
func (t *Terminal) RegisterConfig(_ configfile.SinkConfig) error {
	return nil
}

// Start will start the sink. There is nothing to do in this package.
func (t *Terminal) Start() error {
	return nil
}

// Write renders the message and pushes it out immediately.
func (t *Terminal) Write(msg logsink.Message) error {
	_, err := io.WriteString(t.out, msg.Text())
	return err
}

// Shutdown does not really need to do anything in this package.
// It returns a chan error preloaded with a nil to signal that the
// sink is done.
func (t *Terminal) Shutdown() chan error {
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	return ch
}
