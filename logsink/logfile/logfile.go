// Package logfile appends log messages to a file on disk. The file handle
// is scoped to each write: open in append mode, write one rendered line,
// close again. That keeps the sink safe to use next to other processes
// appending to the same path and means a crash can never strand a held
// handle. With the reset option the file is truncated and stamped with a
// start banner before any messages land in it.
package logfile

import (
	"fmt"
	"os"
	"time"

	"github.com/c2h5oh/datasize"

	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
)

const (
	// SinkTag is used to identify the sink
	SinkTag = "logfile"
)

// FileSink writes rendered messages to a single file path.
type FileSink struct {
	filepath  string
	sizeLimit uint64
}

func init() {
	logsink.RegisterSink(SinkTag, func() logsink.Sink {
		return New()
	})
}

// New will return a new pointer to a FileSink.
func New() *FileSink {
	return &FileSink{}
}

// RegisterConfig validates the file configuration and, when reset is
// requested, truncates the file and writes the banner. The banner carries a
// timestamp so separate runs can be told apart in a shared file.
func (fs *FileSink) RegisterConfig(conf configfile.SinkConfig) error {
	if conf.Logfile.Filepath == "" {
		return fmt.Errorf("the logfile sink needs a filepath. Please check your configuration file")
	}
	fs.filepath = conf.Logfile.Filepath

	if conf.Logfile.SizeLimit != "" {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(conf.Logfile.SizeLimit)); err != nil {
			return fmt.Errorf("could not parse the logfile size_limit %q. Error: %s", conf.Logfile.SizeLimit, err)
		}
		fs.sizeLimit = size.Bytes()
	}

	if conf.Logfile.Reset {
		return fs.reset()
	}
	return nil
}

func (fs *FileSink) reset() error {
	fp, err := os.Create(fs.filepath)
	if err != nil {
		return err
	}
	defer fp.Close()

	_, err = fmt.Fprintf(fp, "--- Log Started at %s ---\n", time.Now().Format(time.RFC3339))
	return err
}

// Start will start the sink. The file was already prepared when the
// configuration was registered.
func (fs *FileSink) Start() error {
	return nil
}

// Write appends one rendered message to the file. The handle is opened and
// closed inside this call on every path, including the error ones.
func (fs *FileSink) Write(msg logsink.Message) error {
	text := msg.Text()

	if fs.sizeLimit > 0 {
		if info, err := os.Stat(fs.filepath); err == nil {
			if uint64(info.Size())+uint64(len(text)) > fs.sizeLimit {
				return fmt.Errorf("log file %s would grow past its size limit of %d bytes", fs.filepath, fs.sizeLimit)
			}
		}
	}

	fp, err := os.OpenFile(fs.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer fp.Close()

	_, err = fp.WriteString(text)
	return err
}

// Shutdown has no handles to close because writes are self contained.
// It returns a chan error preloaded with a nil to signal completion.
func (fs *FileSink) Shutdown() chan error {
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	return ch
}
