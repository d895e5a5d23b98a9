package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/solarfair/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()

	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("expected %v, got %v", timeouts.DefaultPing, got)
	}
	if got := timeouts.Long(); got != timeouts.DefaultLong {
		t.Errorf("expected %v, got %v", timeouts.DefaultLong, got)
	}
}

func TestConfigure_ZeroValuesIgnored(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Short: 42 * time.Second})

	if got := timeouts.Short(); got != 42*time.Second {
		t.Errorf("expected configured short timeout, got %v", got)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("expected medium timeout untouched, got %v", got)
	}
}

func TestWithTimeout_DeadlinePropagates(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), 10*time.Millisecond, zap.NewNop(), "test op")
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", ctx.Err())
	}
}
