package quota

import (
	"context"
	"sync"
	"time"

	"doclens/config"
)

// LLMQuotaLimiter enforces per-minute and daily limits on LLM calls.
// It is in-memory and assumes a single service instance; counters reset
// when the process restarts.
type LLMQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// NewLLMQuotaLimiter builds a limiter from the llm_quota config section.
// Values of 0 or below disable the limit in that direction.
func NewLLMQuotaLimiter(cfg config.LLMQuotaConfig) *LLMQuotaLimiter {
	requestsPerDay := cfg.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := cfg.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &LLMQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

// WaitAndReserve applies the limits before an LLM call.
// - daily limit exhausted: returns (false, nil) and the caller must skip
//   the call.
// - context cancelled while waiting for the per-minute window: returns
//   (false, err).
func (l *LLMQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := time.Now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			nextAllowed := l.lastCall.Add(l.interval)
			delay = time.Until(nextAllowed)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
			// re-evaluate under the lock
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
