package health

import (
	"context"
	"testing"
	"time"
)

type countingChecker struct {
	calls   int
	healthy bool
}

func (c *countingChecker) Check(ctx context.Context) CheckResult {
	c.calls++
	return CheckResult{Name: "dep", Healthy: c.healthy}
}

func TestProbeRunnerReportsUnhealthyDependency(t *testing.T) {
	runner := NewProbeRunner(0, time.Second, &countingChecker{healthy: true}, &countingChecker{healthy: false})

	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected not ready with an unhealthy checker")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestProbeRunnerCachesWithinInterval(t *testing.T) {
	checker := &countingChecker{healthy: true}
	runner := NewProbeRunner(time.Hour, time.Second, checker)

	for i := 0; i < 5; i++ {
		if ready, _ := runner.Ready(context.Background()); !ready {
			t.Fatal("expected ready")
		}
	}
	if checker.calls != 1 {
		t.Fatalf("expected a single real check within the interval, got %d", checker.calls)
	}
}

func TestProbeRunnerWithoutCheckersIsReady(t *testing.T) {
	runner := NewProbeRunner(0, 0)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected ready with no checkers")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
