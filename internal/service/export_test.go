package service

import "time"

// SetClock replaces the time source of an AuthService.
func (s *AuthService) SetClock(now func() time.Time) { s.now = now }

// SetClock replaces the time source of a TokenBucket.
func (tb *TokenBucket) SetClock(now func() time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.now = now
}

func (tb *TokenBucket) EvictIdle(idle time.Duration) { tb.evictIdle(idle) }

var ClampPage = clampPage
