package aggregator

import (
	"fmt"

	"github.com/RKO-solver/parlog/logsink"
)

// Handle is the only surface a worker is given. It packages a log call into
// a message and pushes it onto the shared queue. It never blocks beyond the
// push and never returns an error to the worker. Workers do not get access
// to the sink itself; the single listener owns the medium, which is what
// makes logging from many concurrent workers safe.
type Handle struct {
	queue *queue
}

// Log enqueues the values print-style: rendered in order, space separated,
// newline terminated.
func (h *Handle) Log(args ...interface{}) {
	h.queue.push(logsink.Message{Args: args})
}

// LogWith enqueues the values together with rendering options. The options
// travel with the message untouched; the sink recognizes "sep" and "end"
// and ignores the rest.
func (h *Handle) LogWith(opts map[string]interface{}, args ...interface{}) {
	h.queue.push(logsink.Message{Args: args, Opts: opts})
}

// Logf renders the format on the calling side and enqueues the result as a
// single value.
func (h *Handle) Logf(format string, args ...interface{}) {
	h.queue.push(logsink.Message{Args: []interface{}{fmt.Sprintf(format, args...)}})
}
