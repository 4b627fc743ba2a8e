package configfile

import (
	"os"
	"testing"

	"github.com/Flaque/filet"
)

func TestExampleConfig(t *testing.T) {
	out, err := ExampleConfigFile()
	if err != nil {
		t.Log(err)
		t.Fail()
	}
	t.Log(out)
}

func TestNewConfig(t *testing.T) {
	defer filet.CleanUp(t)

	out, err := ExampleConfigFile()
	if err != nil {
		t.Fatal(err)
	}

	testingConfigFile := filet.TmpFile(t, "", out)
	conf, err := New(testingConfigFile.Name())
	if err != nil {
		t.Fatalf("Failed to create a config struct. Error: %s", err)
	}
	if conf.Sink.Engine != "dual" {
		t.Fatalf("Engine was not read from the example config. Got: %s", conf.Sink.Engine)
	}
	if !conf.Sink.Logfile.Reset {
		t.Fatal("Logfile reset flag was not read from the example config.")
	}
}

func TestDefaults(t *testing.T) {
	defer filet.CleanUp(t)

	testYaml := `sink:
  logfile:
    filepath: /tmp/run.log`

	testingfile := filet.TmpFile(t, "", testYaml)
	conf, err := New(testingfile.Name())
	if err != nil {
		t.Fatalf("Failed to read a minimal configuration. Error: %s", err)
	}

	if conf.Sink.Engine != "terminal" {
		t.Errorf("Default sink engine is wrong. Want: terminal, Got: %s", conf.Sink.Engine)
	}
	if conf.Aggregator.PollIntervalMS != 50 {
		t.Errorf("Default poll interval is wrong. Want: 50, Got: %d", conf.Aggregator.PollIntervalMS)
	}
}

func TestTemplating(t *testing.T) {
	defer filet.CleanUp(t)

	os.Setenv("SYSLOG_SERVER", "syslog.test.local")
	testYaml := `sink:
  engine: syslog
  syslog:
    program_name: example_service
    address: {{ env "SYSLOG_SERVER" }}
    protocol: {{ default ( env "SYSLOG_PROTOCOL" ) "udp" }}`

	testingfile := filet.TmpFile(t, "", testYaml)
	conf, err := New(testingfile.Name())
	if err != nil {
		t.Fatalf("Failed to generate templated configuration. Got Error: %s", err)
	}

	tests := []struct {
		want     string
		got      string
		function string
	}{
		{
			want:     "syslog.test.local",
			got:      conf.Sink.Syslog.Address,
			function: `{{ env "SYSLOG_SERVER" }}`,
		},
		{
			want:     "udp",
			got:      conf.Sink.Syslog.ConnectionType,
			function: `{{ default ( env "SYSLOG_PROTOCOL" ) "udp" }}`,
		},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("Templating function %s did not render. Want: %s, Got: %s", test.function, test.want, test.got)
		}
	}
}

func TestBadConfigFile(t *testing.T) {
	defer filet.CleanUp(t)

	testingfile := filet.TmpFile(t, "", "sink: [not, a, mapping]")
	if _, err := New(testingfile.Name()); err == nil {
		t.Fatal("A config file with the wrong shape did not return an error.")
	}

	if _, err := New("/this/path/does/not/exist.yaml"); err == nil {
		t.Fatal("A missing config file did not return an error.")
	}
}
