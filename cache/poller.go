package cache

import (
	"sync"
	"time"
)

// Poll refetches key every interval until the returned stop function is
// called. Dashboard-class queries use this to keep shared multi-user
// state approximately fresh regardless of user interaction. A failed
// tick is not retried eagerly; the error surfaces on the next read.
func (s *Store) Poll(key Key, interval time.Duration, fetch FetchFunc) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_, _ = s.Refresh(key, fetch)
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
