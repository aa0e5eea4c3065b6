// Package gen generates random job-shop instances for the CLI and for
// tests, mirroring the reference generator's distributions.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
)

const (
	minStepDuration = 3
	maxStepDuration = 10
	dueDateSlack    = 50
)

// Random builds a dense job-shop instance with numJobs jobs and
// numMachines machines: every job visits every machine exactly once,
// in an independently shuffled order, with a duration drawn uniformly
// from [3,10] and a due date drawn uniformly from
// [numJobs*numMachines, numJobs*numMachines+50].
func Random(numJobs, numMachines int, rng *rand.Rand) (*jsp.Instance, error) {
	if numJobs <= 0 {
		return nil, fmt.Errorf("gen: numJobs must be > 0, got %d", numJobs)
	}
	if numMachines <= 0 {
		return nil, fmt.Errorf("gen: numMachines must be > 0, got %d", numMachines)
	}
	if rng == nil {
		return nil, fmt.Errorf("gen: rng must not be nil")
	}

	b := jsp.NewBuilder()
	for m := 0; m < numMachines; m++ {
		b.AddMachine(jsp.MachineID(m))
	}

	lbDue := numJobs * numMachines
	for j := 0; j < numJobs; j++ {
		dueDate := lbDue + rng.Intn(dueDateSlack+1)
		b.AddJob(jsp.JobID(j), dueDate)

		order := rng.Perm(numMachines)
		for step, machine := range order {
			duration := minStepDuration + rng.Intn(maxStepDuration-minStepDuration+1)
			b.AddStep(jsp.JobID(j), jsp.StepID(step), jsp.MachineID(machine), duration)
		}
	}

	return b.Build()
}
