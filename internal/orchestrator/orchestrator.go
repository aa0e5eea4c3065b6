// Package orchestrator wires the GRASP constructor and the island-model
// GA search together: build an initial feasible schedule, seed it as
// the shared global best, then run several GA workers in parallel
// until the configured time limit elapses.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/r3b0rn/jsspsolve/internal/ga"
	"github.com/r3b0rn/jsspsolve/internal/grasp"
	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"github.com/r3b0rn/jsspsolve/internal/opt"
	"github.com/r3b0rn/jsspsolve/internal/stats"
)

// Config parameterises one end-to-end solve: worker count, time budget,
// GRASP greediness, RNG seed and the shared GA tuning every worker
// island uses. The instance itself is passed to Run separately.
type Config struct {
	NumThreads int
	TimeLimit  time.Duration
	Alpha      float64
	Seed       int64
	GA         ga.Config
}

func (c Config) Validate() error {
	if c.NumThreads <= 0 {
		return fmt.Errorf("orchestrator: num threads must be > 0, got %d", c.NumThreads)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("orchestrator: time limit must be > 0, got %s", c.TimeLimit)
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("orchestrator: alpha must be in [0,1], got %f", c.Alpha)
	}
	return c.GA.Validate()
}

// DefaultConfig matches the CLI's documented defaults.
func DefaultConfig() Config {
	return Config{
		NumThreads: 4,
		TimeLimit:  10 * time.Second,
		Alpha:      0.3,
		Seed:       0,
		GA:         ga.DefaultConfig(),
	}
}

// Run builds a GRASP initial schedule for inst, then spawns
// cfg.NumThreads GA islands to improve it in parallel for up to
// cfg.TimeLimit. It returns the best schedule found across every
// island.
func Run(ctx context.Context, inst *jsp.Instance, cfg Config, logger hclog.Logger) (opt.Result, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	runID := uuid.New()
	logger = logger.With("run_id", runID.String())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rootRng := rand.New(rand.NewSource(seed))

	constructor, err := grasp.New(grasp.Config{Alpha: cfg.Alpha, LivelockBump: 3}, rand.New(rand.NewSource(rootRng.Int63())))
	if err != nil {
		return opt.Result{}, err
	}

	initial, err := constructor.Construct(ctx, inst)
	if err != nil {
		return opt.Result{}, pkgerrors.Wrap(err, "orchestrator: initial construction failed")
	}
	logger.Info("initial GRASP schedule built", "makespan", initial.Makespan())

	gbest := ga.NewGlobalBest(initial)
	gbest.SetLogger(logger)
	pool := ga.NewPersonalBestPool(cfg.GA.PersonalBestPoolSize)

	runCtx, cancel := context.WithTimeout(ctx, cfg.TimeLimit)
	defer cancel()

	workers := make([]*ga.Worker, cfg.NumThreads)
	var g errgroup.Group
	for i := 0; i < cfg.NumThreads; i++ {
		i := i
		workerSeed := rootRng.Int63()
		worker, err := ga.New(cfg.GA, inst, rand.New(rand.NewSource(workerSeed)), gbest, pool)
		if err != nil {
			return opt.Result{}, err
		}
		workers[i] = worker

		g.Go(func() error {
			if err := worker.Run(runCtx); err != nil {
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return opt.Result{}, err
	}

	final := gbest.Solution()
	logger.Info("GA search finished", "makespan", final.Makespan(), "duration", time.Since(start).String())

	evals := make([]int, len(workers))
	gens := make([]int, len(workers))
	totalEvals, totalGens := 0, 0
	for i, w := range workers {
		evals[i] = w.Evaluations
		gens[i] = w.Generations
		totalEvals += w.Evaluations
		totalGens += w.Generations
	}
	evalStats := stats.Summarize(evals)
	genStats := stats.Summarize(gens)

	result := ga.ToOptResult(final, totalEvals, totalGens, map[string]any{
		"run_id":           runID.String(),
		"num_threads":      cfg.NumThreads,
		"alpha":            cfg.Alpha,
		"initial_makespan": initial.Makespan(),
		"mean_evaluations": evalStats.Mean,
		"mean_generations": genStats.Mean,
	})
	result.Duration = time.Since(start)
	return result, nil
}
