// Package jsp holds the immutable job-shop instance model: jobs, steps
// and machines, and the read-only Instance that binds them together.
package jsp

import "fmt"

// JobID, StepID and MachineID identify jobs, steps within a job, and
// machines. All three are non-negative. Build requires each job's step
// ids to be dense (0..n-1); it does not require job or machine ids to
// be dense, though gen.Random assigns them 0..n-1.
type JobID uint32

// StepID identifies a step within a job's totally ordered step sequence.
type StepID uint32

// MachineID identifies one of the instance's machines.
type MachineID uint32

// TaskID names one scheduled (or schedulable) unit of work: a single
// step of a single job.
type TaskID struct {
	Job  JobID
	Step StepID
}

func (t TaskID) String() string {
	return fmt.Sprintf("(job=%d,step=%d)", t.Job, t.Step)
}
