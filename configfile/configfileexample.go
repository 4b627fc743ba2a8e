package configfile

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"
)

// ExampleConfigFile will return a string with an example yaml file.
// All features should be in here to present to the user.
func ExampleConfigFile() (string, error) {
	exampleConfig := Config{
		Sink: SinkConfig{
			Engine: "dual",
			Logfile: FileSink{
				Filepath:  "/var/log/optimizer/run.log",
				Reset:     true,
				SizeLimit: "100MB",
			},
			Syslog: Syslog{
				ProgramName:    "parlog",
				Address:        "syslog.example.local:514",
				ConnectionType: "udp",
			},
		},
		Aggregator: AggregatorConfig{
			PollIntervalMS: 50,
		},
	}

	out, err := yaml.Marshal(exampleConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate the example config. Error: %s", err)
	}
	return string(out), nil
}
