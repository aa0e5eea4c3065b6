package ga

import (
	"github.com/r3b0rn/jsspsolve/internal/opt"
	"github.com/r3b0rn/jsspsolve/internal/schedule"
)

// ToOptResult wraps a worker's final solution into the shared opt.Result
// shape the orchestrator and CLI report on.
func ToOptResult(sol *schedule.Solution, evals, gens int, meta map[string]any) opt.Result {
	return opt.Result{
		Solution:    sol,
		Makespan:    sol.Makespan(),
		Evaluations: evals,
		Iterations:  gens,
		Meta:        meta,
	}
}
