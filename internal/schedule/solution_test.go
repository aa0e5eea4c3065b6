package schedule

import (
	"testing"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoByTwoInstance(t *testing.T) *jsp.Instance {
	t.Helper()
	b := jsp.NewBuilder().AddMachine(0).AddMachine(1).AddJob(0, 0).AddJob(1, 0)
	b.AddStep(0, 0, 0, 3)
	b.AddStep(0, 1, 1, 2)
	b.AddStep(1, 0, 1, 4)
	b.AddStep(1, 1, 0, 1)
	inst, err := b.Build()
	require.NoError(t, err)
	return inst
}

func TestInsertTracksMakespanAndTimelines(t *testing.T) {
	sol := New()
	sol.Insert(NewStepTask(0, 3, 0, 0, 0))
	sol.Insert(NewStepTask(1, 2, 3, 0, 1))
	sol.Insert(NewStepTask(1, 4, 0, 1, 0))
	sol.Insert(NewStepTask(0, 1, 4, 1, 1))

	assert.Equal(t, 5, sol.Makespan())
	assert.Equal(t, 4, sol.NumTasks())

	line0 := sol.MachineTimeline(0)
	require.Len(t, line0, 2)
	assert.Equal(t, jsp.JobID(0), line0[0].JobID)
	assert.Equal(t, jsp.JobID(1), line0[1].JobID)

	task, ok := sol.Get(jsp.TaskID{Job: 1, Step: 0})
	require.True(t, ok)
	assert.Equal(t, 4, task.EndTime)

	_, ok = sol.Get(jsp.TaskID{Job: 9, Step: 0})
	assert.False(t, ok)
}

func TestMachinesSortedAscending(t *testing.T) {
	sol := New()
	sol.Insert(NewStepTask(2, 1, 0, 0, 0))
	sol.Insert(NewStepTask(0, 1, 0, 0, 1))
	assert.Equal(t, []jsp.MachineID{0, 2}, sol.Machines())
}

func TestCloneIsIndependent(t *testing.T) {
	sol := New()
	sol.Insert(NewStepTask(0, 3, 0, 0, 0))
	sol.Chromosome = []jsp.JobID{0}

	clone := sol.Clone()
	clone.Insert(NewStepTask(0, 2, 3, 0, 1))
	clone.Chromosome[0] = 7

	assert.Equal(t, 1, sol.NumTasks())
	assert.Equal(t, 2, clone.NumTasks())
	assert.Equal(t, jsp.JobID(0), sol.Chromosome[0])
	assert.Equal(t, jsp.JobID(7), clone.Chromosome[0])
}

func TestRecomputeSortsTimelinesAndMakespan(t *testing.T) {
	sol := New()
	sol.Insert(NewStepTask(0, 2, 5, 0, 0))
	sol.Insert(NewStepTask(0, 3, 0, 1, 0))

	sol.Recompute()

	line := sol.MachineTimeline(0)
	require.Len(t, line, 2)
	assert.Equal(t, jsp.JobID(1), line[0].JobID)
	assert.Equal(t, jsp.JobID(0), line[1].JobID)
	assert.Equal(t, 7, sol.Makespan())
}

func TestValidateAcceptsFeasibleSchedule(t *testing.T) {
	inst := twoByTwoInstance(t)
	sol := New()
	sol.Insert(NewStepTask(0, 3, 0, 0, 0))
	sol.Insert(NewStepTask(1, 2, 3, 0, 1))
	sol.Insert(NewStepTask(1, 4, 5, 1, 0))
	sol.Insert(NewStepTask(0, 1, 9, 1, 1))

	assert.NoError(t, sol.Validate(inst))
}

func TestValidateRejectsMachineOverlap(t *testing.T) {
	inst := twoByTwoInstance(t)
	sol := New()
	sol.Insert(NewStepTask(0, 3, 0, 0, 0))
	sol.Insert(NewStepTask(0, 2, 1, 1, 1))

	err := sol.Validate(inst)
	assert.Error(t, err)
}

func TestValidateRejectsJobOrderViolation(t *testing.T) {
	inst := twoByTwoInstance(t)
	sol := New()
	sol.Insert(NewStepTask(0, 3, 5, 0, 0))
	sol.Insert(NewStepTask(1, 2, 0, 0, 1))

	err := sol.Validate(inst)
	assert.Error(t, err)
}
