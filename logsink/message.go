// Package logsink holds the sink capability that performs the actual writes
// for the aggregation service, plus the registry the sink engines hook
// themselves into. The engines live in sub packages and satisfy the Sink
// interface. The aggregation layer treats messages as opaque cargo; only a
// sink ever looks inside one.
package logsink

import (
	"fmt"
	"strings"
)

// Message is the payload a worker hands over when it logs. Args keeps the
// positional values in the order they were given and Opts carries the
// keyword values verbatim. Neither is touched between enqueue and the sink.
type Message struct {
	Args []interface{}
	Opts map[string]interface{}
}

// Text renders the message the way a print call would: every positional
// value through fmt.Sprint, joined with a separator and finished with a
// terminator. The "sep" and "end" keys in Opts override the defaults of a
// single space and a newline. All other keys are ignored so that unknown
// options never change the bytes on the wire. Downstream parsers match on
// substrings of these lines, so the rendering must stay stable.
func (m Message) Text() string {
	sep := " "
	end := "\n"
	if v, ok := m.Opts["sep"].(string); ok {
		sep = v
	}
	if v, ok := m.Opts["end"].(string); ok {
		end = v
	}

	parts := make([]string, len(m.Args))
	for i, arg := range m.Args {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, sep) + end
}
