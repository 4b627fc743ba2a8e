package configfile

// SinkConfig selects the sink engine that will receive the aggregated log
// lines and carries the per-engine settings. The configuration is read once
// at construction time and never changed afterwards.
type SinkConfig struct {
	Engine  string   `yaml:"engine,omitempty"`
	Logfile FileSink `yaml:"logfile,omitempty"`
	Syslog  Syslog   `yaml:"syslog,omitempty"`
}

// FileSink configures the file based sink. When Reset is true the file is
// truncated and stamped with a start banner before any messages land in it.
// SizeLimit takes human readable sizes like "100MB"; an empty value means
// the file may grow without bound.
type FileSink struct {
	Filepath  string `yaml:"filepath"`
	Reset     bool   `yaml:"reset,omitempty"`
	SizeLimit string `yaml:"size_limit,omitempty"`
}

// Syslog is used to send configuration to the syslog sink.
type Syslog struct {
	ProgramName           string `yaml:"program_name"`
	Address               string `yaml:"address"`
	ConnectionType        string `yaml:"protocol,omitempty"`
	CertificateBundlePath string `yaml:"cert_bundle_path,omitempty"`
	OverrideHostname      string `yaml:"override_hostname,omitempty"`
}
