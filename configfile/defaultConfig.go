package configfile

var (
	defaultSinkEngine = "terminal"

	// defaultPollIntervalMS is how long the listener sleeps between empty
	// queue checks when nothing has arrived.
	defaultPollIntervalMS = 50
)
