// Package schedule holds the Solution model: scheduled tasks, per
// machine timelines and the makespan they imply.
package schedule

import "github.com/r3b0rn/jsspsolve/internal/jsp"

// Kind tags a Task's variant. Only KindStep is ever constructed by this
// repository's algorithms; KindPM is a reserved extension point for
// preventive-maintenance tasks the core deliberately ignores (spec
// Non-goals).
type Kind int

const (
	KindStep Kind = iota
	KindPM
)

func (k Kind) String() string {
	switch k {
	case KindStep:
		return "STEP"
	case KindPM:
		return "PM"
	default:
		return "unknown"
	}
}

// Task is one scheduled unit of time on one machine. For KindStep tasks
// Job/Step identify the originating job step; for the reserved KindPM
// variant they are meaningless (PM tasks carry no job).
type Task struct {
	Kind      Kind
	MachineID jsp.MachineID
	Duration  int
	StartTime int
	EndTime   int

	JobID  jsp.JobID
	StepID jsp.StepID
}

// NewStepTask builds a Task of KindStep, deriving EndTime from
// StartTime and Duration.
func NewStepTask(machine jsp.MachineID, duration, start int, job jsp.JobID, step jsp.StepID) Task {
	return Task{
		Kind:      KindStep,
		MachineID: machine,
		Duration:  duration,
		StartTime: start,
		EndTime:   start + duration,
		JobID:     job,
		StepID:    step,
	}
}

// TaskID returns the (job, step) pair this task schedules. Only
// meaningful for KindStep tasks.
func (t Task) TaskID() jsp.TaskID {
	return jsp.TaskID{Job: t.JobID, Step: t.StepID}
}
