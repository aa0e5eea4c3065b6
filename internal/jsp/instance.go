package jsp

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Instance is an immutable-after-Build description of a job-shop
// problem: its jobs (each a totally ordered step sequence) and its
// machines. Build deterministic iteration order (sorted by id) so that
// decoding a fixed chromosome against the same Instance always produces
// the same schedule.
type Instance struct {
	jobs     map[JobID]Job
	machines map[MachineID]Machine
	jobIDs   []JobID
	machIDs  []MachineID
}

// Jobs returns the instance's jobs ordered by JobID ascending.
func (inst *Instance) Jobs() []Job {
	out := make([]Job, len(inst.jobIDs))
	for i, id := range inst.jobIDs {
		out[i] = inst.jobs[id]
	}
	return out
}

// JobIDs returns the instance's job ids ordered ascending.
func (inst *Instance) JobIDs() []JobID {
	return inst.jobIDs
}

// Machines returns the instance's machines ordered by MachineID
// ascending.
func (inst *Instance) Machines() []Machine {
	out := make([]Machine, len(inst.machIDs))
	for i, id := range inst.machIDs {
		out[i] = inst.machines[id]
	}
	return out
}

// MachineIDs returns the instance's machine ids ordered ascending.
func (inst *Instance) MachineIDs() []MachineID {
	return inst.machIDs
}

// NumJobs and NumMachines report the instance's size.
func (inst *Instance) NumJobs() int     { return len(inst.jobIDs) }
func (inst *Instance) NumMachines() int { return len(inst.machIDs) }

// TotalSteps returns the total number of steps across every job — the
// length every valid Chromosome for this instance must have.
func (inst *Instance) TotalSteps() int {
	total := 0
	for _, j := range inst.jobs {
		total += j.NumSteps()
	}
	return total
}

// Job looks up a job by id.
func (inst *Instance) Job(id JobID) (Job, bool) {
	j, ok := inst.jobs[id]
	return j, ok
}

// Step looks up a step by (job id, step id), the lookup the decoder
// performs once per chromosome gene.
func (inst *Instance) Step(job JobID, step StepID) (Step, bool) {
	j, ok := inst.jobs[job]
	if !ok {
		return Step{}, false
	}
	return j.Step(step)
}

// Builder accumulates machines, jobs and steps before Build validates
// and freezes them into an Instance.
type Builder struct {
	jobs     map[JobID]*jobBuild
	machines map[MachineID]Machine
}

type jobBuild struct {
	jobID   JobID
	dueDate int
	steps   map[StepID]Step
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		jobs:     make(map[JobID]*jobBuild),
		machines: make(map[MachineID]Machine),
	}
}

// AddMachine registers a machine. Calling it twice for the same id is
// idempotent.
func (b *Builder) AddMachine(id MachineID) *Builder {
	b.machines[id] = Machine{MachineID: id}
	return b
}

// AddJob registers a job's due date. It may be called before or after
// AddStep for the same job.
func (b *Builder) AddJob(id JobID, dueDate int) *Builder {
	b.job(id).dueDate = dueDate
	return b
}

// AddStep attaches a step to a job.
func (b *Builder) AddStep(job JobID, step StepID, machine MachineID, duration int) *Builder {
	jb := b.job(job)
	jb.steps[step] = Step{JobID: job, StepID: step, MachineID: machine, Duration: duration}
	return b
}

func (b *Builder) job(id JobID) *jobBuild {
	jb, ok := b.jobs[id]
	if !ok {
		jb = &jobBuild{jobID: id, steps: make(map[StepID]Step)}
		b.jobs[id] = jb
	}
	return jb
}

// Build validates the accumulated data and returns an immutable
// Instance. Every invariant violation is collected and returned
// together via go.uber.org/multierr, rather than stopping at the
// first one, so a caller sees the whole problem in a single report.
func (b *Builder) Build() (*Instance, error) {
	var errs error

	if len(b.machines) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("instance must have at least one machine"))
	}
	if len(b.jobs) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("instance must have at least one job"))
	}

	jobIDs := make([]JobID, 0, len(b.jobs))
	for id := range b.jobs {
		jobIDs = append(jobIDs, id)
	}
	sort.Slice(jobIDs, func(i, j int) bool { return jobIDs[i] < jobIDs[j] })

	machIDs := make([]MachineID, 0, len(b.machines))
	for id := range b.machines {
		machIDs = append(machIDs, id)
	}
	sort.Slice(machIDs, func(i, j int) bool { return machIDs[i] < machIDs[j] })

	jobs := make(map[JobID]Job, len(b.jobs))
	for _, id := range jobIDs {
		jb := b.jobs[id]

		stepIDs := make([]StepID, 0, len(jb.steps))
		for sid := range jb.steps {
			stepIDs = append(stepIDs, sid)
		}
		sort.Slice(stepIDs, func(i, j int) bool { return stepIDs[i] < stepIDs[j] })

		for i, sid := range stepIDs {
			if int(sid) != i {
				errs = multierr.Append(errs, fmt.Errorf(
					"job %d: step ids must be dense starting at 0, got gap at index %d (step id %d)",
					id, i, sid))
				break
			}
		}

		for _, sid := range stepIDs {
			step := jb.steps[sid]
			if _, ok := b.machines[step.MachineID]; !ok {
				errs = multierr.Append(errs, fmt.Errorf(
					"job %d step %d: references unknown machine %d", id, sid, step.MachineID))
			}
			if step.Duration < 0 {
				errs = multierr.Append(errs, fmt.Errorf(
					"job %d step %d: duration must be >= 0, got %d", id, sid, step.Duration))
			}
		}

		jobs[id] = Job{JobID: id, DueDate: jb.dueDate, steps: jb.steps}
	}

	if errs != nil {
		return nil, errs
	}

	return &Instance{
		jobs:     jobs,
		machines: b.machines,
		jobIDs:   jobIDs,
		machIDs:  machIDs,
	}, nil
}
