package quota

import (
	"context"
	"testing"
	"time"

	"doclens/config"
)

func TestWaitAndReserveUnlimited(t *testing.T) {
	l := NewLLMQuotaLimiter(config.LLMQuotaConfig{})

	for i := 0; i < 5; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected reservation %d to succeed without limits", i)
		}
	}
}

func TestWaitAndReserveDailyLimit(t *testing.T) {
	l := NewLLMQuotaLimiter(config.LLMQuotaConfig{RequestsPerDay: 2})

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected reservation %d within the daily limit", i)
		}
	}

	ok, err := l.WaitAndReserve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected reservation beyond the daily limit to be refused")
	}
}

func TestWaitAndReserveHonorsContextCancellation(t *testing.T) {
	// One request per minute forces a long wait for the second call.
	l := NewLLMQuotaLimiter(config.LLMQuotaConfig{RequestsPerMinute: 1})

	ok, err := l.WaitAndReserve(context.Background())
	if err != nil || !ok {
		t.Fatalf("first reservation should succeed, got ok=%v err=%v", ok, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ok, err = l.WaitAndReserve(ctx)
	if ok {
		t.Fatalf("expected second reservation to be blocked")
	}
	if err == nil {
		t.Fatalf("expected context error while waiting")
	}
}
