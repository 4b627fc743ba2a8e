package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/RKO-solver/parlog/logsink"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("medium is gone")
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	term := &Terminal{out: buf}

	if err := term.Write(logsink.Message{Args: []interface{}{"hello", "world"}}); err != nil {
		t.Fatalf("Write to a healthy terminal returned an error: %s", err)
	}
	if buf.String() != "hello world\n" {
		t.Fatalf("Terminal wrote the wrong bytes. Got: %q", buf.String())
	}
}

func TestWriteFailure(t *testing.T) {
	term := &Terminal{out: failingWriter{}}
	if err := term.Write(logsink.Message{Args: []interface{}{"lost"}}); err == nil {
		t.Fatal("Write to a broken medium did not return an error.")
	}
}

func TestShutdownIsPreloaded(t *testing.T) {
	term := New()
	if err := <-term.Shutdown(); err != nil {
		t.Fatalf("Terminal shutdown returned an error: %s", err)
	}
}
