package aggregator

import (
	"sync"

	"github.com/RKO-solver/parlog/logsink"
)

// queue is the unbounded buffer sitting between the worker handles and the
// listener. Any number of goroutines may push; only the listener pops. A
// push can never block or fail, which is what lets Handle.Log promise to
// never raise towards the worker. Messages pushed by one goroutine come
// back out in the order they went in; pushes from different goroutines
// interleave in arrival order.
type queue struct {
	mu    sync.Mutex
	items []logsink.Message
}

func newQueue() *queue {
	return &queue{
		items: make([]logsink.Message, 0),
	}
}

func (q *queue) push(msg logsink.Message) {
	q.mu.Lock()
	q.items = append(q.items, msg)
	q.mu.Unlock()
}

// pop removes and returns the oldest message. The bool is false when the
// queue was empty.
func (q *queue) pop() (logsink.Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return logsink.Message{}, false
	}
	msg := q.items[0]
	q.items = q.items[1:]
	return msg, true
}

func (q *queue) empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) == 0
}
