package logsink

import "github.com/RKO-solver/parlog/configfile"

// Sink is an output engine that the aggregation service drains messages
// into. Engines are configured once, started before the first write and
// shut down after the last one. Write is called by a single goroutine only,
// so engines never need to guard their medium against concurrent writes.
type Sink interface {
	RegisterConfig(configfile.SinkConfig) error
	Start() error
	Write(Message) error
	Shutdown() chan error
}
