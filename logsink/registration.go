package logsink

import (
	"fmt"

	"github.com/RKO-solver/parlog/configfile"
)

// RegisterFunc is a function that can build a fresh sink engine.
type RegisterFunc func() Sink

// registeredSinks contains a map of all available sink engines and a
// function that will initialize them.
var registeredSinks map[string]RegisterFunc

// RegisterSink will register the sink engines when the packages are
// read at init time.
func RegisterSink(name string, regfunc RegisterFunc) {
	if registeredSinks == nil {
		registeredSinks = make(map[string]RegisterFunc)
	}
	registeredSinks[name] = regfunc
}

// New builds the sink engine named in the configuration and applies the
// configuration to it. The engine packages need to have been imported for
// their tags to resolve; the allsinks package pulls in every engine we ship.
func New(conf configfile.SinkConfig) (Sink, error) {
	regfunc, ok := registeredSinks[conf.Engine]
	if !ok {
		return nil, fmt.Errorf("sink engine %s is not recognized. Please check your configuration file", conf.Engine)
	}

	sink := regfunc()
	if err := sink.RegisterConfig(conf); err != nil {
		return nil, fmt.Errorf("sink engine %s rejected its configuration. Error: %s", conf.Engine, err)
	}
	return sink, nil
}
