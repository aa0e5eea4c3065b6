// Package command implements the jsspsolve CLI's subcommands.
package command

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	pkgerrors "github.com/pkg/errors"

	"github.com/r3b0rn/jsspsolve/internal/gen"
	"github.com/r3b0rn/jsspsolve/internal/ga"
	"github.com/r3b0rn/jsspsolve/internal/orchestrator"
)

// SolveCommand generates a random job-shop instance and solves it with
// a GRASP-seeded island-model genetic algorithm.
type SolveCommand struct {
	UI OutputWriter
}

// OutputWriter is the minimal surface SolveCommand needs for its
// stdout/stderr summary lines, so tests can substitute a buffer.
type OutputWriter interface {
	Output(string)
	Error(string)
}

func (c *SolveCommand) Synopsis() string {
	return "Generate a random job-shop instance and solve it"
}

func (c *SolveCommand) Help() string {
	return strings.TrimSpace(`
Usage: jsspsolve solve [options]

  Generates a random job-shop scheduling instance and searches for a
  low-makespan schedule using a GRASP constructor followed by a
  parallel island-model genetic algorithm.

Options:

  --num-jobs=N       Number of jobs to generate (default 10)
  --num-machines=M   Number of machines to generate (default 10)
  --num-threads=T    Number of parallel GA islands (default 4)
  --time-limit=DUR   GA search time budget, e.g. 10s (default 10s)
  --alpha=F          GRASP restricted-candidate-list fraction (default 0.3)
  --seed=N           RNG seed; 0 seeds from wall-clock time (default 0)
  --log-level=LEVEL  trace|debug|info|warn|error (default info)
`)
}

func (c *SolveCommand) Run(args []string) int {
	var (
		numJobs     int
		numMachines int
		numThreads  int
		timeLimit   time.Duration
		alpha       float64
		seed        int64
		logLevel    string
	)

	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.IntVar(&numJobs, "num-jobs", 10, "number of jobs to generate")
	fs.IntVar(&numMachines, "num-machines", 10, "number of machines to generate")
	fs.IntVar(&numThreads, "num-threads", 4, "number of parallel GA islands")
	fs.DurationVar(&timeLimit, "time-limit", 10*time.Second, "GA search time budget")
	fs.Float64Var(&alpha, "alpha", 0.3, "GRASP restricted-candidate-list fraction")
	fs.Int64Var(&seed, "seed", 0, "RNG seed; 0 seeds from wall-clock time")
	fs.StringVar(&logLevel, "log-level", "info", "trace|debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "jsspsolve",
		Level: hclog.LevelFromString(logLevel),
	})

	instSeed := seed
	if instSeed == 0 {
		instSeed = time.Now().UnixNano()
	}
	inst, err := gen.Random(numJobs, numMachines, rand.New(rand.NewSource(instSeed)))
	if err != nil {
		c.UI.Error(fmt.Sprintf("failed to generate instance: %s", err))
		return 1
	}

	cfg := orchestrator.Config{
		NumThreads: numThreads,
		TimeLimit:  timeLimit,
		Alpha:      alpha,
		Seed:       seed,
		GA:         ga.DefaultConfig(),
	}
	if err := cfg.Validate(); err != nil {
		c.UI.Error(pkgerrors.WithMessage(err, "invalid configuration").Error())
		return 1
	}

	res, err := orchestrator.Run(context.Background(), inst, cfg, logger)
	if err != nil {
		c.UI.Error(fmt.Sprintf("solve failed: %s", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("instance: %d jobs, %d machines", numJobs, numMachines))
	if initial, ok := res.Meta["initial_makespan"].(int); ok {
		c.UI.Output(fmt.Sprintf("initial GRASP makespan: %d", initial))
	}
	c.UI.Output(fmt.Sprintf("final makespan: %d (%s)", res.Makespan, res.Duration.Round(time.Millisecond)))

	return 0
}
