package health

import (
	"context"
	"sync"
	"time"
)

type CheckResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type Checker interface {
	Check(ctx context.Context) CheckResult
}

// ProbeRunner evaluates a fixed set of dependency checkers and caches the
// combined verdict for interval, so a readiness probe hammered by an
// orchestrator does not hammer the database in turn.
type ProbeRunner struct {
	interval time.Duration
	timeout  time.Duration
	checkers []Checker

	mu          sync.Mutex
	lastRun     time.Time
	lastReady   bool
	lastResults []CheckResult
}

func NewProbeRunner(interval, timeout time.Duration, checkers ...Checker) *ProbeRunner {
	return &ProbeRunner{interval: interval, timeout: timeout, checkers: checkers}
}

func (p *ProbeRunner) Ready(ctx context.Context) (bool, []CheckResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if !p.lastRun.IsZero() && now.Sub(p.lastRun) < p.interval {
		return p.lastReady, p.lastResults
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ready := true
	results := make([]CheckResult, 0, len(p.checkers))
	for _, c := range p.checkers {
		res := c.Check(ctx)
		if !res.Healthy {
			ready = false
		}
		results = append(results, res)
	}

	p.lastRun = now
	p.lastReady = ready
	p.lastResults = results
	return ready, results
}
