package jsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeByTwo(t *testing.T) *Instance {
	t.Helper()
	b := NewBuilder().
		AddMachine(0).
		AddMachine(1).
		AddJob(0, 10).
		AddJob(1, 12).
		AddJob(2, 14)

	b.AddStep(0, 0, 0, 3)
	b.AddStep(0, 1, 1, 4)
	b.AddStep(1, 0, 1, 2)
	b.AddStep(1, 1, 0, 5)
	b.AddStep(2, 0, 0, 1)
	b.AddStep(2, 1, 1, 6)

	inst, err := b.Build()
	require.NoError(t, err)
	return inst
}

func TestBuildProducesSortedIDsAndCounts(t *testing.T) {
	inst := threeByTwo(t)

	assert.Equal(t, []JobID{0, 1, 2}, inst.JobIDs())
	assert.Equal(t, []MachineID{0, 1}, inst.MachineIDs())
	assert.Equal(t, 3, inst.NumJobs())
	assert.Equal(t, 2, inst.NumMachines())
	assert.Equal(t, 6, inst.TotalSteps())
}

func TestJobAndStepLookup(t *testing.T) {
	inst := threeByTwo(t)

	job, ok := inst.Job(1)
	require.True(t, ok)
	assert.Equal(t, 12, job.DueDate)
	assert.Equal(t, 2, job.NumSteps())

	step, ok := inst.Step(1, 0)
	require.True(t, ok)
	assert.Equal(t, MachineID(1), step.MachineID)
	assert.Equal(t, 2, step.Duration)

	_, ok = inst.Step(1, 5)
	assert.False(t, ok)

	_, ok = inst.Job(99)
	assert.False(t, ok)
}

func TestBuildRejectsUnknownMachine(t *testing.T) {
	b := NewBuilder().AddMachine(0).AddJob(0, 0)
	b.AddStep(0, 0, 7, 3)

	_, err := b.Build()
	assert.Error(t, err)
}

func TestBuildRejectsGappyStepIDs(t *testing.T) {
	b := NewBuilder().AddMachine(0).AddJob(0, 0)
	b.AddStep(0, 0, 0, 3)
	b.AddStep(0, 2, 0, 3)

	_, err := b.Build()
	assert.Error(t, err)
}

func TestBuildRejectsNegativeDuration(t *testing.T) {
	b := NewBuilder().AddMachine(0).AddJob(0, 0)
	b.AddStep(0, 0, 0, -1)

	_, err := b.Build()
	assert.Error(t, err)
}

func TestBuildRejectsEmptyInstance(t *testing.T) {
	_, err := NewBuilder().Build()
	assert.Error(t, err)
}

func TestBuildCollectsMultipleErrors(t *testing.T) {
	b := NewBuilder().AddMachine(0).AddJob(0, 0)
	b.AddStep(0, 0, 9, -1)

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown machine")
	assert.Contains(t, err.Error(), "duration must be")
}
