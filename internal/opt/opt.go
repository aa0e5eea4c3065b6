// Package opt holds the shared solver result type and the Optimizer
// solver contract.
package opt

import (
	"context"
	"time"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"github.com/r3b0rn/jsspsolve/internal/schedule"
)

// Optimizer is the contract for a search strategy that turns an
// Instance into a Result. No type in this repository implements it
// yet; the orchestrator builds its Result through ga.ToOptResult.
type Optimizer interface {
	Solve(ctx context.Context, inst *jsp.Instance) (Result, error)
}

// Result carries a solver's best Solution plus run bookkeeping.
type Result struct {
	Solution    *schedule.Solution
	Makespan    int
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}
