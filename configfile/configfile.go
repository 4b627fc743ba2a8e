// Package configfile reads the YAML configuration that describes where the
// aggregation service should send its log lines and how the listener should
// behave. The file is rendered through a small templating layer first so
// values can be pulled in from the environment.
package configfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/RKO-solver/parlog/configfile/templating"
)

// Config is a struct that represents the YAML file that we want to pass in.
type Config struct {
	Sink       SinkConfig       `yaml:"sink"`
	Aggregator AggregatorConfig `yaml:"aggregator,omitempty"`
}

// AggregatorConfig holds the tunables for the listener that drains the
// shared queue.
type AggregatorConfig struct {
	PollIntervalMS int `yaml:"poll_interval_ms,omitempty"`
}

// PollInterval converts the configured poll interval into a time.Duration.
func (ac AggregatorConfig) PollInterval() time.Duration {
	return time.Duration(ac.PollIntervalMS) * time.Millisecond
}

// New will return a new config file if one can be read from the location
// specified. An error is also returned if something goes wrong.
func New(filePath string) (*Config, error) {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file. Error: %s", err)
	}

	decodedYaml, err := templating.GenerateTemplate(fileBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template. Error: %s", err)
	}

	newConfig := blankConfig()
	if err := yaml.Unmarshal(decodedYaml, newConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml. Error: %s", err)
	}

	newConfig.setDefaultSinkEngine()
	newConfig.setDefaultPollInterval()

	return newConfig, nil
}

func blankConfig() *Config {
	return &Config{
		Sink: SinkConfig{
			Engine: defaultSinkEngine,
		},
	}
}

func (cf *Config) setDefaultSinkEngine() {
	if cf.Sink.Engine == "" {
		cf.Sink.Engine = defaultSinkEngine
	}
}

func (cf *Config) setDefaultPollInterval() {
	if cf.Aggregator.PollIntervalMS <= 0 {
		cf.Aggregator.PollIntervalMS = defaultPollIntervalMS
	}
}

func (cf Config) String() string {
	output, _ := yaml.Marshal(cf)
	return string(output)
}
