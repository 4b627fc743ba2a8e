package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	// Pull in all available sinks.
	_ "github.com/RKO-solver/parlog/logsink/allsinks"

	"github.com/RKO-solver/parlog/aggregator"
	"github.com/RKO-solver/parlog/configfile"
	"github.com/RKO-solver/parlog/logsink"
	"github.com/RKO-solver/parlog/runlog"
)

var (
	// version and timestamp are expected to be passed in at build time.
	buildVersion   = "0.1.0"
	buildTimestamp = ""
)

func main() {
	flagHelp := flag.Bool("h", false, "Shows this help menu.")
	flagVersion := flag.Bool("v", false, "Shows the version.")
	flagVersionExtended := flag.Bool("version", false, "Shows extended version numbering.")
	flagConfigExample := flag.Bool("example-config", false, "Displays an example configuration.")
	flagConfigFilePath := flag.String("f", "/parlog.yaml", "Location of the config file to read.")
	flagWorkers := flag.Int("workers", 4, "Number of demo optimization workers to run.")
	flagRounds := flag.Int("rounds", 25, "Improvement attempts each demo worker makes.")
	flagDebug := flag.Bool("debug", false, "Turns on debug logging for the demo runner.")
	// Parse and process terminating flags
	flag.Parse()
	if *flagHelp {
		flag.PrintDefaults()
		return
	}
	if *flagVersion {
		fmt.Println(buildVersion)
		return
	}
	if *flagVersionExtended {
		fmt.Printf("Version: %s\nBuild time: %s\nGo version: %s\n", buildVersion, buildTimestamp, runtime.Version())
		return
	}
	if *flagConfigExample {
		out, err := configfile.ExampleConfigFile()
		if err != nil {
			fmt.Printf(`There was an error generating the configuration file example.
Please log an error with the maintainer.
The error was: %s`, err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	config, err := configfile.New(*flagConfigFilePath)
	if err != nil {
		fmt.Printf("Failed to render the configuration. Error: %s\n", err)
		os.Exit(1)
	}

	sink, err := logsink.New(config.Sink)
	if err != nil {
		fmt.Printf("Could not build the configured sink. Error: %s\n", err)
		os.Exit(1)
	}

	manager := aggregator.New(sink, config.Aggregator.PollInterval())
	if err := manager.Start(); err != nil {
		fmt.Printf("Could not start the aggregation manager. Error: %s\n", err)
		os.Exit(1)
	}

	status := runlog.New(manager.GetHandle())
	status.DebugOn(*flagDebug)
	status.Debugln("Debug logging for the demo runner has been turned on")
	status.Debugf("Using generated config:\n%s", *config)

	// Let the user cut the demo short. The workers stop producing and the
	// normal drain still runs, so nothing already logged is lost.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	stopEarly := make(chan struct{})
	go func() {
		<-signals
		close(stopEarly)
	}()

	wg := &sync.WaitGroup{}
	for id := 0; id < *flagWorkers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(id, *flagRounds, manager.GetHandle(), stopEarly)
		}(id)
	}
	wg.Wait()

	status.Println("All workers finished. Draining the log queue.")
	if err := manager.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown error: %s\n", err)
		os.Exit(1)
	}
}

// runWorker fakes one optimization run. It walks a cost value downhill and
// reports every improvement in the same line format the real solvers use,
// which is also what the downstream convergence plotter parses.
func runWorker(id, rounds int, handle *aggregator.Handle, stop <-chan struct{}) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	start := time.Now()
	best := 1000.0 + rng.Float64()*500

	for round := 0; round < rounds; round++ {
		select {
		case <-stop:
			return
		default:
		}

		time.Sleep(time.Duration(rng.Intn(20)) * time.Millisecond)
		candidate := best - rng.Float64()*25
		if candidate < best {
			best = candidate
			handle.Logf("SA %d NEW BEST: %.2f - Time: %.2fs", id, best, time.Since(start).Seconds())
		}
	}
}
