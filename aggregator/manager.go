// Package aggregator serializes log messages produced by many concurrent
// workers through a single sink. Workers get a Handle and only ever push
// onto a shared queue; one listener goroutine drains the queue and performs
// the writes. Messages from a single handle keep their order, messages from
// different handles interleave in arrival order, and a graceful stop drains
// everything that was enqueued before it.
package aggregator

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RKO-solver/parlog/logsink"
)

// defaultPollInterval is how long the listener sleeps when it finds the
// queue empty before looking again.
const defaultPollInterval = 50 * time.Millisecond

// State tracks where the manager is in its lifecycle.
type State int

const (
	// Idle is the state after construction, before Start.
	Idle State = iota
	// Running means the listener is draining the queue.
	Running
	// Stopping means Stop was called and the final drain is under way.
	Stopping
	// Stopped is terminal. A stopped manager cannot be restarted.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// LifecycleError reports a manager operation called in the wrong state,
// for example stopping a manager that was never started.
type LifecycleError struct {
	Op    string
	State State
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("cannot %s the aggregation manager while it is %s", e.Op, e.State)
}

// Manager owns the shared queue, the shutdown flag and the listener that
// feeds the sink. It is the only component allowed to touch the sink after
// Start, and the only one that may end the run.
type Manager struct {
	sink         logsink.Sink
	queue        *queue
	pollInterval time.Duration
	stopFlag     atomic.Bool
	listenerDone chan struct{}

	mu    sync.Mutex
	state State
}

// New builds an Idle manager around the given sink. A poll interval of zero
// or below selects the default of 50ms.
func New(sink logsink.Sink, pollInterval time.Duration) *Manager {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Manager{
		sink:         sink,
		queue:        newQueue(),
		pollInterval: pollInterval,
		listenerDone: make(chan struct{}),
		state:        Idle,
	}
}

// Start brings the sink up and spawns the listener. Calling Start on a
// manager that is not Idle fails fast with a LifecycleError rather than
// spawning a second listener.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Idle {
		return &LifecycleError{Op: "start", State: m.state}
	}
	if err := m.sink.Start(); err != nil {
		return fmt.Errorf("could not start the sink engine. Error: %s", err)
	}

	m.state = Running
	go m.listen()
	return nil
}

// GetHandle returns a new producer handle bound to the shared queue. It can
// be called any number of times and also before Start; enqueueing does not
// depend on the listener being alive, only delivery does.
func (m *Manager) GetHandle() *Handle {
	return &Handle{queue: m.queue}
}

// Stop sets the shutdown flag, waits for the listener to drain the queue
// and exit, then shuts the sink engine down. Every message enqueued before
// this call is delivered before it returns. Stop is the only blocking
// operation on the manager and is meant to be called once, after the
// workers have finished producing.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if m.state != Running {
		defer m.mu.Unlock()
		return &LifecycleError{Op: "stop", State: m.state}
	}
	m.state = Stopping
	m.mu.Unlock()

	m.stopFlag.Store(true)
	<-m.listenerDone

	err := <-m.sink.Shutdown()

	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("the sink engine did not shut down cleanly. Error: %s", err)
	}
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// listen is the single consumer. It drains the queue into the sink and
// exits only once the shutdown flag is set and the queue has been observed
// empty afterwards, so nothing enqueued before Stop can be lost. A message
// that races in between the flag being set and the final emptiness check is
// still picked up; over-delivery is fine, silent loss is not.
func (m *Manager) listen() {
	defer close(m.listenerDone)

	for !m.stopFlag.Load() || !m.queue.empty() {
		for {
			msg, ok := m.queue.pop()
			if !ok {
				break
			}
			m.dispatch(msg)
		}
		if m.queue.empty() && !m.stopFlag.Load() {
			time.Sleep(m.pollInterval)
		}
	}
}

// dispatch hands one message to the sink. Write errors and panics are
// contained here and reported to stderr; a bad payload or a flaky medium
// must never take the listener down, the log service is not allowed to
// crash the computation it is instrumenting.
func (m *Manager) dispatch(msg logsink.Message) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "log sink paniced on a message: %v\n", r)
		}
	}()

	if err := m.sink.Write(msg); err != nil {
		fmt.Fprintf(os.Stderr, "log sink write failed: %s\n", err)
	}
}
