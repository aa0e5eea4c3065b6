package ga

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/r3b0rn/jsspsolve/internal/chromosome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRunImprovesOrMatchesInitialBest(t *testing.T) {
	inst := smallInstance(t)
	rng := rand.New(rand.NewSource(42))
	decoder := chromosome.NewDecoder(inst)

	seed := chromosome.EncodeFromInstance(inst, rng)
	seedSol, err := decoder.Decode(seed)
	require.NoError(t, err)
	gbest := NewGlobalBest(seedSol)
	pool := NewPersonalBestPool(10)

	cfg := DefaultConfig()
	cfg.Population = 20
	cfg.Elite = 2
	cfg.DropWorst = 6
	cfg.MaxGenerations = 15

	w, err := New(cfg, inst, rng, gbest, pool)
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.NoError(t, err)

	assert.LessOrEqual(t, gbest.Makespan(), seedSol.Makespan())
	assert.Equal(t, 15, w.Generations)
	assert.Greater(t, w.Evaluations, 0)
}

func TestWorkerRunRespectsContextCancellation(t *testing.T) {
	inst := smallInstance(t)
	rng := rand.New(rand.NewSource(1))
	decoder := chromosome.NewDecoder(inst)

	seed := chromosome.EncodeFromInstance(inst, rng)
	seedSol, err := decoder.Decode(seed)
	require.NoError(t, err)
	gbest := NewGlobalBest(seedSol)
	pool := NewPersonalBestPool(10)

	cfg := DefaultConfig()
	cfg.Population = 10
	cfg.Elite = 1
	cfg.DropWorst = 3

	w, err := New(cfg, inst, rng, gbest, pool)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = w.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewRejectsInvalidDependencies(t *testing.T) {
	inst := smallInstance(t)
	rng := rand.New(rand.NewSource(1))
	decoder := chromosome.NewDecoder(inst)
	seedSol, err := decoder.Decode(chromosome.EncodeFromInstance(inst, rng))
	require.NoError(t, err)
	gbest := NewGlobalBest(seedSol)
	pool := NewPersonalBestPool(1)

	_, err = New(DefaultConfig(), nil, rng, gbest, pool)
	assert.Error(t, err)

	_, err = New(DefaultConfig(), inst, nil, gbest, pool)
	assert.Error(t, err)

	_, err = New(DefaultConfig(), inst, rng, nil, pool)
	assert.Error(t, err)

	_, err = New(DefaultConfig(), inst, rng, gbest, nil)
	assert.Error(t, err)
}
