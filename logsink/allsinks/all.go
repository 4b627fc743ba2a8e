// Package allsinks is used to bring in all the packages that contain the
// sinks which we support. This allows the sinks to be written as a plugin
// and used when they are added to the list below.
// We need to do it this way because the compiler needs to know which
// packages to bring in.
package allsinks

import (
	// Adding terminal sink
	_ "github.com/RKO-solver/parlog/logsink/terminal"
	// Adding logfile sink
	_ "github.com/RKO-solver/parlog/logsink/logfile"
	// Adding dual sink
	_ "github.com/RKO-solver/parlog/logsink/dual"
	// Adding syslog sink
	_ "github.com/RKO-solver/parlog/logsink/syslog"
	// Adding devnull sink
	_ "github.com/RKO-solver/parlog/logsink/devnull"
)
