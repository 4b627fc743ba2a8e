package aggregator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/RKO-solver/parlog/logsink"
)

func TestQueueOrder(t *testing.T) {
	q := newQueue()
	for i := 0; i < 100; i++ {
		q.push(logsink.Message{Args: []interface{}{i}})
	}

	for i := 0; i < 100; i++ {
		msg, ok := q.pop()
		if !ok {
			t.Fatalf("Queue ran out of messages at %d.", i)
		}
		if msg.Args[0].(int) != i {
			t.Fatalf("Queue broke FIFO order. Want: %d, Got: %v", i, msg.Args[0])
		}
	}

	if _, ok := q.pop(); ok {
		t.Fatal("An empty queue handed out a message.")
	}
	if !q.empty() {
		t.Fatal("A drained queue does not report empty.")
	}
}

func TestQueueConcurrentPushers(t *testing.T) {
	const pushers = 8
	const perPusher = 500

	q := newQueue()
	wg := &sync.WaitGroup{}
	for p := 0; p < pushers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perPusher; i++ {
				q.push(logsink.Message{Args: []interface{}{fmt.Sprintf("p%d", id), i}})
			}
		}(p)
	}
	wg.Wait()

	// Every message arrives exactly once and each pusher's messages keep
	// their relative order.
	lastSeen := make(map[string]int)
	for id := 0; id < pushers; id++ {
		lastSeen[fmt.Sprintf("p%d", id)] = -1
	}

	popped := 0
	for {
		msg, ok := q.pop()
		if !ok {
			break
		}
		popped++
		id := msg.Args[0].(string)
		seq := msg.Args[1].(int)
		if seq != lastSeen[id]+1 {
			t.Fatalf("Pusher %s messages arrived out of order. Want: %d, Got: %d", id, lastSeen[id]+1, seq)
		}
		lastSeen[id] = seq
	}

	if popped != pushers*perPusher {
		t.Fatalf("Lost messages in the queue. Want: %d, Got: %d", pushers*perPusher, popped)
	}
}
