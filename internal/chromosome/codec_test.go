package chromosome

import (
	"math/rand"
	"testing"

	"github.com/r3b0rn/jsspsolve/internal/jsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoByTwo(t *testing.T) *jsp.Instance {
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

func TestValidateAcceptsWellFormedChromosome(t *testing.T) {
	inst := twoByTwo(t)
	c := Chromosome{0, 1, 1, 0}
	assert.NoError(t, Validate(c, inst))
}

func TestValidateRejectsWrongMultiplicity(t *testing.T) {
	inst := twoByTwo(t)
	c := Chromosome{0, 0, 1, 0}
	assert.Error(t, Validate(c, inst))
}

func TestValidateRejectsUnknownJob(t *testing.T) {
	inst := twoByTwo(t)
	c := Chromosome{0, 1, 1, 9}
	assert.Error(t, Validate(c, inst))
}

func TestEncodeFromInstanceProducesValidChromosome(t *testing.T) {
	inst := twoByTwo(t)
	rng := rand.New(rand.NewSource(1))
	c := EncodeFromInstance(inst, rng)

	assert.Len(t, c, inst.TotalSteps())
	assert.NoError(t, Validate(c, inst))
}

func TestDecodeProducesFeasibleSolution(t *testing.T) {
	inst := twoByTwo(t)
	c := Chromosome{0, 1, 1, 0}

	d := NewDecoder(inst)
	sol, err := d.Decode(c)
	require.NoError(t, err)
	assert.NoError(t, sol.Validate(inst))
	assert.Equal(t, Chromosome(c), Chromosome(sol.Chromosome))
}

func TestDecodeRejectsUnknownJob(t *testing.T) {
	inst := twoByTwo(t)
	d := NewDecoder(inst)
	_, err := d.Decode(Chromosome{9})
	assert.Error(t, err)
}

func TestDecodeRejectsOverlongJobSequence(t *testing.T) {
	inst := twoByTwo(t)
	d := NewDecoder(inst)
	_, err := d.Decode(Chromosome{0, 0, 0})
	assert.Error(t, err)
}

func TestMakespanMatchesDecode(t *testing.T) {
	inst := twoByTwo(t)
	c := Chromosome{0, 1, 1, 0}

	d := NewDecoder(inst)
	sol, err := d.Decode(c)
	require.NoError(t, err)

	ms, err := d.Makespan(c)
	require.NoError(t, err)
	assert.Equal(t, sol.Makespan(), ms)
}

func TestDecoderIsReusableAcrossDecodes(t *testing.T) {
	inst := twoByTwo(t)
	d := NewDecoder(inst)

	c1 := Chromosome{0, 1, 1, 0}
	c2 := Chromosome{1, 0, 0, 1}

	ms1 := d.MustMakespan(c1)
	ms2 := d.MustMakespan(c2)
	ms1Again := d.MustMakespan(c1)

	assert.Equal(t, ms1, ms1Again)
	assert.NotEqual(t, 0, ms2)
}

func TestEncodeFromSolutionRoundTripsThroughMakespan(t *testing.T) {
	inst := twoByTwo(t)
	c := Chromosome{0, 1, 1, 0}

	d := NewDecoder(inst)
	sol, err := d.Decode(c)
	require.NoError(t, err)

	reencoded := EncodeFromSolution(sol)
	ms, err := d.Makespan(reencoded)
	require.NoError(t, err)
	assert.Equal(t, sol.Makespan(), ms)
}

func TestShuffleIsPermutationPreserving(t *testing.T) {
	inst := twoByTwo(t)
	rng := rand.New(rand.NewSource(42))
	c := EncodeFromInstance(inst, rng)
	before := c.Clone()

	Shuffle(c, rng)
	assert.NoError(t, Validate(c, inst))
	assert.ElementsMatch(t, before, c)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	c := Chromosome{0, 1}
	clone := c.Clone()
	clone[0] = 1
	assert.Equal(t, jsp.JobID(0), c[0])
	assert.Equal(t, jsp.JobID(1), clone[0])
}
