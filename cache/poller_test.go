package cache

import (
	"sync"
	"testing"
	"time"
)

func TestPoll(t *testing.T) {
	s := NewStore(time.Minute)
	key := NewKey(ResSystemHealth, nil)

	var mu sync.Mutex
	var calls int
	stop := s.Poll(key, 5*time.Millisecond, func() (interface{}, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return "healthy", nil
	})

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("poller only ran %d times", n)
		case <-time.After(5 * time.Millisecond):
		}
	}
	stop()
	stop() // stopping twice is a no-op

	mu.Lock()
	stopped := calls
	mu.Unlock()
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	after := calls
	mu.Unlock()
	if after > stopped+1 { // one tick may already be in flight at stop
		t.Errorf("poller kept running after stop: %d -> %d", stopped, after)
	}

	if v, st := s.Peek(key); v != "healthy" || st != StateFresh {
		t.Errorf("Peek() = %v/%s, want healthy/fresh", v, st)
	}
}
