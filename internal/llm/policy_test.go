package llm

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"newsgen/internal/core"
)

func TestWithTimeoutReturnsResult(t *testing.T) {
	got, err := WithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "hasil", nil
	})
	if err != nil {
		t.Fatalf("WithTimeout() unexpected error: %v", err)
	}
	if got != "hasil" {
		t.Errorf("WithTimeout() = %q, want hasil", got)
	}
}

func TestWithTimeoutAbandonsSlowAttempt(t *testing.T) {
	started := time.Now()
	_, err := WithTimeout(context.Background(), 20*time.Millisecond, func(ctx context.Context) (string, error) {
		time.Sleep(500 * time.Millisecond)
		return "terlambat", nil
	})
	elapsed := time.Since(started)

	if !core.IsTimeout(err) {
		t.Fatalf("WithTimeout() error = %v, want TimeoutError", err)
	}
	// The caller stops waiting at the deadline; it does not wait for the
	// abandoned attempt to finish.
	if elapsed > 200*time.Millisecond {
		t.Errorf("WithTimeout() waited %v past its deadline", elapsed)
	}
}

func TestWithTimeoutPropagatesAttemptError(t *testing.T) {
	wantErr := core.WrapBackendError("upstream failed", errors.New("boom"))
	_, err := WithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	if !errors.Is(err, wantErr) && err != wantErr {
		t.Errorf("WithTimeout() error = %v, want the attempt error", err)
	}
}

func TestWithTimeoutHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithTimeout(ctx, time.Second, func(ctx context.Context) (string, error) {
		time.Sleep(100 * time.Millisecond)
		return "", nil
	})
	if !core.IsTimeout(err) {
		t.Errorf("WithTimeout() with cancelled context error = %v, want TimeoutError", err)
	}
}

func TestWithRetryFirstSuccessShortCircuits(t *testing.T) {
	var calls atomic.Int32
	got, err := WithRetry(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "hasil", nil
	})
	if err != nil {
		t.Fatalf("WithRetry() unexpected error: %v", err)
	}
	if got != "hasil" {
		t.Errorf("WithRetry() = %q, want hasil", got)
	}
	if calls.Load() != 1 {
		t.Errorf("attempt count = %d, want 1", calls.Load())
	}
}

func TestWithRetryRecoversAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	got, err := WithRetry(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
		if calls.Add(1) < 3 {
			return "", core.WrapBackendError("transient", nil)
		}
		return "hasil", nil
	})
	if err != nil {
		t.Fatalf("WithRetry() unexpected error: %v", err)
	}
	if got != "hasil" {
		t.Errorf("WithRetry() = %q, want hasil", got)
	}
	if calls.Load() != 3 {
		t.Errorf("attempt count = %d, want 3", calls.Load())
	}
}

func TestWithRetryExhaustsAndSurfacesLastError(t *testing.T) {
	var calls atomic.Int32
	_, err := WithRetry(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
		n := calls.Add(1)
		if n < 3 {
			return "", core.NewTimeoutError("earlier failure")
		}
		return "", core.NewTimeoutError("final failure")
	})

	if calls.Load() != 3 {
		t.Errorf("attempt count = %d, want exactly 3", calls.Load())
	}
	if err == nil || !strings.Contains(err.Error(), "final failure") {
		t.Errorf("WithRetry() error = %v, want the last attempt's error", err)
	}
}

func TestWithRetryNeverRetriesTerminalErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "validation", err: core.NewValidationError("topic", "is required")},
		{name: "configuration", err: core.NewConfigurationError("no api key")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			_, err := WithRetry(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
				calls.Add(1)
				return "", tt.err
			})
			if calls.Load() != 1 {
				t.Errorf("attempt count = %d, want 1 (no retry)", calls.Load())
			}
			if !errors.Is(err, tt.err) && err != tt.err {
				t.Errorf("WithRetry() error = %v, want the terminal error unchanged", err)
			}
		})
	}
}

func TestWithRetryDefaultsNonPositiveParameters(t *testing.T) {
	var calls atomic.Int32
	_, err := WithRetry(context.Background(), 0, 0, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", core.NewTimeoutError("always fails")
	})
	if err == nil {
		t.Fatal("WithRetry() expected error, got nil")
	}
	if calls.Load() != DefaultMaxRetries {
		t.Errorf("attempt count = %d, want default %d", calls.Load(), DefaultMaxRetries)
	}
}

func TestRaceFirstSuccessWins(t *testing.T) {
	tiers := []time.Duration{time.Second, time.Second, time.Second}
	var calls atomic.Int32

	got, err := Race(context.Background(), tiers, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "hasil", nil
	})
	if err != nil {
		t.Fatalf("Race() unexpected error: %v", err)
	}
	if got != "hasil" {
		t.Errorf("Race() = %q, want hasil", got)
	}
	// Every tier launches an attempt; the first success is returned without
	// waiting for the rest.
	if n := calls.Load(); n < 1 || n > int32(len(tiers)) {
		t.Errorf("attempt count = %d, want between 1 and %d", n, len(tiers))
	}
}

func TestRaceSlowWinnerStillWins(t *testing.T) {
	tiers := []time.Duration{30 * time.Millisecond, 300 * time.Millisecond}

	got, err := Race(context.Background(), tiers, func(ctx context.Context) (string, error) {
		// Slower than the first tier but inside the second.
		time.Sleep(100 * time.Millisecond)
		return "hasil lambat", nil
	})
	if err != nil {
		t.Fatalf("Race() unexpected error: %v", err)
	}
	if got != "hasil lambat" {
		t.Errorf("Race() = %q, want hasil lambat", got)
	}
}

func TestRaceAllFailuresAggregateToTimeout(t *testing.T) {
	tiers := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}

	_, err := Race(context.Background(), tiers, func(ctx context.Context) (string, error) {
		time.Sleep(time.Second)
		return "", nil
	})
	if !core.IsTimeout(err) {
		t.Fatalf("Race() error = %v, want aggregate TimeoutError", err)
	}
	if !strings.Contains(err.Error(), "all 2 generation attempts") {
		t.Errorf("Race() error message = %q, want attempt count", err.Error())
	}
}

func TestRaceBackendFailuresAggregateToTimeout(t *testing.T) {
	tiers := []time.Duration{time.Second, time.Second}
	var calls atomic.Int32

	_, err := Race(context.Background(), tiers, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", core.WrapBackendError("upstream failed", nil)
	})
	if !core.IsTimeout(err) {
		t.Errorf("Race() error = %v, want aggregate TimeoutError", err)
	}
	if calls.Load() != int32(len(tiers)) {
		t.Errorf("attempt count = %d, want %d", calls.Load(), len(tiers))
	}
}

func TestRaceStopsOnTerminalError(t *testing.T) {
	tiers := []time.Duration{time.Second, time.Second}
	terminal := core.NewConfigurationError("no api key")

	_, err := Race(context.Background(), tiers, func(ctx context.Context) (string, error) {
		return "", terminal
	})
	if !core.IsConfiguration(err) {
		t.Errorf("Race() error = %v, want the terminal error class", err)
	}
}
