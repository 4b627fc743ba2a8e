// Package syslog ships the aggregated log lines to a syslog endpoint. It is
// useful when the optimization box is remote and the run should be watched
// from a central collector. Supports udp, tcp and tcp+tls transports.
package syslog

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	syslogger "github.com/silverstagtech/srslog"

	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
)

const (
	tlsConnection = "tcp+tls"
	tcpConnection = "tcp"
	udpConnection = "udp"
	// SinkTag will be used to call this package
	SinkTag         = "syslog"
	defaultProtocol = udpConnection
)

var validDialers = map[string]bool{
	tlsConnection: true,
	tcpConnection: true,
	udpConnection: true,
}

func isValidDialer(s string) bool {
	_, ok := validDialers[s]
	return ok
}

func init() {
	logsink.RegisterSink(SinkTag, func() logsink.Sink {
		return &Syslog{}
	})
}

// Syslog is responsible for logging to a syslog endpoint.
type Syslog struct {
	config    configfile.Syslog
	tlsconfig *tls.Config
	logwriter *syslogger.Writer
	running   bool
}

func (sl *Syslog) readCertificates() (*x509.CertPool, error) {
	if sl.config.CertificateBundlePath == "" {
		return nil, fmt.Errorf("no certificate bundle specified")
	}
	certbundle, err := os.ReadFile(sl.config.CertificateBundlePath)
	if err != nil {
		return nil, err
	}

	roots := x509.NewCertPool()
	ok := roots.AppendCertsFromPEM(certbundle)
	if !ok {
		return nil, fmt.Errorf("failed to parse the given certificate bundle")
	}

	return roots, nil
}

// RegisterConfig validates the transport settings and prepares the TLS
// material when the tls transport was asked for.
func (sl *Syslog) RegisterConfig(conf configfile.SinkConfig) error {
	sl.config = conf.Syslog

	if sl.config.ConnectionType == "" {
		sl.config.ConnectionType = defaultProtocol
	}
	if !isValidDialer(sl.config.ConnectionType) {
		return fmt.Errorf("%s is not a valid protocol to connect to syslog", sl.config.ConnectionType)
	}
	if sl.config.Address == "" {
		return fmt.Errorf("the syslog sink needs an address. Please check your configuration file")
	}

	if sl.config.ConnectionType == tlsConnection {
		roots, err := sl.readCertificates()
		if err != nil {
			return err
		}
		sl.tlsconfig = &tls.Config{
			RootCAs: roots,
		}
	}

	return nil
}

// Start connects to the syslog endpoint. Start is safe to be called
// multiple times.
func (sl *Syslog) Start() error {
	if sl.running {
		return nil
	}

	var writer *syslogger.Writer
	var err error
	switch sl.config.ConnectionType {
	case tlsConnection:
		writer, err = syslogger.DialWithTLSConfig(
			tlsConnection,
			sl.config.Address,
			syslogger.LOG_INFO|syslogger.LOG_DAEMON,
			sl.config.ProgramName,
			sl.tlsconfig,
		)
	case tcpConnection, udpConnection:
		writer, err = syslogger.Dial(
			sl.config.ConnectionType,
			sl.config.Address,
			syslogger.LOG_INFO|syslogger.LOG_DAEMON,
			sl.config.ProgramName,
		)
	default:
		err = fmt.Errorf("invalid syslog transport detected")
	}
	if err != nil {
		return err
	}

	if sl.config.OverrideHostname != "" {
		writer.SetHostname(sl.config.OverrideHostname)
	}

	sl.logwriter = writer
	sl.running = true
	return nil
}

// Write sends one rendered line to the endpoint at info level. The payload
// is not inspected; level routing would mean parsing caller text, which the
// aggregation layer promises not to do.
func (sl *Syslog) Write(msg logsink.Message) error {
	if !sl.running {
		return fmt.Errorf("the syslog sink is not connected")
	}
	return sl.logwriter.Info(msg.Text())
}

// Shutdown closes the connection to the endpoint and reports the outcome on
// a preloaded channel.
func (sl *Syslog) Shutdown() chan error {
	ch := make(chan error, 1)
	if sl.logwriter != nil {
		ch <- sl.logwriter.Close()
	} else {
		ch <- nil
	}
	close(ch)
	sl.running = false
	return ch
}
