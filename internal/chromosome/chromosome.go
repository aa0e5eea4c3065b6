// Package chromosome implements the operation-based chromosome codec:
// encoding a Solution or a fresh Instance into a permutation-with-
// repetition, and decoding any such permutation back into a feasible,
// semi-active Solution.
package chromosome

import (
	"fmt"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
)

// Chromosome is a sequence of job ids of length Σ|steps(job)|, where
// each job id appears exactly |steps(job)| times. The k-th occurrence
// of job j decodes to step k of job j (0-indexed).
type Chromosome []jsp.JobID

// Clone returns an independent copy.
func (c Chromosome) Clone() Chromosome {
	return append(Chromosome(nil), c...)
}

// Validate checks the multiplicity invariant: every job id occurs
// exactly as many times as the job has steps.
func Validate(c Chromosome, inst *jsp.Instance) error {
	want := make(map[jsp.JobID]int, inst.NumJobs())
	for _, job := range inst.Jobs() {
		want[job.JobID] = job.NumSteps()
	}
	got := make(map[jsp.JobID]int, len(want))
	for _, j := range c {
		got[j]++
	}
	for id, n := range want {
		if got[id] != n {
			return fmt.Errorf("chromosome: job %d occurs %d times, want %d", id, got[id], n)
		}
	}
	for id := range got {
		if _, ok := want[id]; !ok {
			return fmt.Errorf("chromosome: unknown job id %d", id)
		}
	}
	return nil
}
