package dual

import (
	"errors"
	"testing"

	"github.com/silverstagtech/gotracer"

	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
)

// captureSink records rendered messages and can be told to fail every write.
type captureSink struct {
	tracer      *gotracer.Tracer
	failWrites  bool
	shutdownErr error
}

func newCaptureSink(fail bool) *captureSink {
	return &captureSink{tracer: gotracer.New(), failWrites: fail}
}

func (cs *captureSink) RegisterConfig(configfile.SinkConfig) error { return nil }
func (cs *captureSink) Start() error                               { return nil }

func (cs *captureSink) Write(msg logsink.Message) error {
	if cs.failWrites {
		return errors.New("write refused")
	}
	cs.tracer.Send(msg.Text())
	return nil
}

func (cs *captureSink) Shutdown() chan error {
	ch := make(chan error, 1)
	ch <- cs.shutdownErr
	close(ch)
	return ch
}

func TestWriteReachesBothSinks(t *testing.T) {
	term := newCaptureSink(false)
	file := newCaptureSink(false)
	d := &Dual{term: term, file: file}

	if err := d.Write(logsink.Message{Args: []interface{}{"both"}}); err != nil {
		t.Fatalf("Write with two healthy sinks returned an error: %s", err)
	}
	if term.tracer.Len() != 1 || file.tracer.Len() != 1 {
		t.Fatalf("Message did not reach both sinks. Terminal: %d, File: %d", term.tracer.Len(), file.tracer.Len())
	}
}

func TestFailureIsolationBetweenSinks(t *testing.T) {
	term := newCaptureSink(true)
	file := newCaptureSink(false)
	d := &Dual{term: term, file: file}

	err := d.Write(logsink.Message{Args: []interface{}{"still delivered"}})
	if err == nil {
		t.Fatal("A failing sub sink did not surface an error.")
	}
	if file.tracer.Len() != 1 {
		t.Fatalf("The healthy sink did not receive the message. Got %d messages.", file.tracer.Len())
	}

	// Same check the other way around.
	term = newCaptureSink(false)
	file = newCaptureSink(true)
	d = &Dual{term: term, file: file}

	if err := d.Write(logsink.Message{Args: []interface{}{"still delivered"}}); err == nil {
		t.Fatal("A failing sub sink did not surface an error.")
	}
	if term.tracer.Len() != 1 {
		t.Fatalf("The healthy sink did not receive the message. Got %d messages.", term.tracer.Len())
	}
}

func TestShutdownCollectsErrors(t *testing.T) {
	term := newCaptureSink(false)
	file := newCaptureSink(false)
	file.shutdownErr = errors.New("file would not close")
	d := &Dual{term: term, file: file}

	if err := <-d.Shutdown(); err == nil {
		t.Fatal("A sub sink shutdown error was swallowed.")
	}
}
