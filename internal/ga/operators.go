package ga

import (
	"math/rand"

	"github.com/r3b0rn/jsspsolve/internal/chromosome"
	"github.com/r3b0rn/jsspsolve/internal/jsp"
)

// TournamentSelect draws size indices uniformly with replacement from
// scores and returns the index of the best (lowest-score) draw.
func TournamentSelect(scores []int, size int, rng *rand.Rand) int {
	best := rng.Intn(len(scores))
	bestScore := scores[best]
	for i := 1; i < size; i++ {
		cand := rng.Intn(len(scores))
		if scores[cand] < bestScore {
			best = cand
			bestScore = scores[cand]
		}
	}
	return best
}

// TournamentSelectAmong is TournamentSelect restricted to a candidate
// subset of population indices — the breeding pool left after the
// worst individuals of a generation are excluded from parenthood.
func TournamentSelectAmong(candidates []int, scores []int, size int, rng *rand.Rand) int {
	best := candidates[rng.Intn(len(candidates))]
	bestScore := scores[best]
	for i := 1; i < size; i++ {
		cand := candidates[rng.Intn(len(candidates))]
		if scores[cand] < bestScore {
			best = cand
			bestScore = scores[cand]
		}
	}
	return best
}

// CrossoverSplit draws the split point PartitionCrossover needs,
// uniformly from [2, maxJobID-2] where maxJobID is the largest job id
// in the instance (numJobs-1 for a dense 0-based id space). Reports
// false when numJobs < 5, in which case the range is empty and spec
// §4.E's documented fallback applies: the caller should return both
// parents unchanged instead of calling PartitionCrossover.
func CrossoverSplit(numJobs int, rng *rand.Rand) (jsp.JobID, bool) {
	if numJobs < 5 {
		return 0, false
	}
	maxJobID := numJobs - 1
	lo, hi := 2, maxJobID-2
	return jsp.JobID(lo + rng.Intn(hi-lo+1)), true
}

// PartitionCrossover splits the job-id space at splitJob into
// G1 = {j < splitJob} and G2 = {j >= splitJob}. Child 1 keeps parent
// 1's genes at every position whose job id falls in G1 and fills the
// remaining positions with parent 2's G2 genes, in the order they
// appear in parent 2; child 2 is the mirror image, keeping parent 2's
// G2 genes and filling G1 positions from parent 1's order. Because
// membership is decided by job id rather than by chromosome position,
// no placed-gene bitmap is needed — each complement is precomputed
// once and consumed through a single cursor.
func PartitionCrossover(p1, p2 chromosome.Chromosome, splitJob jsp.JobID) (c1, c2 chromosome.Chromosome) {
	n := len(p1)
	c1 = make(chromosome.Chromosome, n)
	c2 = make(chromosome.Chromosome, n)

	g2FromP2 := make([]jsp.JobID, 0, n)
	for _, g := range p2 {
		if g >= splitJob {
			g2FromP2 = append(g2FromP2, g)
		}
	}
	g1FromP1 := make([]jsp.JobID, 0, n)
	for _, g := range p1 {
		if g < splitJob {
			g1FromP1 = append(g1FromP1, g)
		}
	}

	cursor := 0
	for i, g := range p1 {
		if g < splitJob {
			c1[i] = g
		} else {
			c1[i] = g2FromP2[cursor]
			cursor++
		}
	}

	cursor = 0
	for i, g := range p2 {
		if g >= splitJob {
			c2[i] = g
		} else {
			c2[i] = g1FromP1[cursor]
			cursor++
		}
	}

	return c1, c2
}

// BestOfPermutationMutation picks three positions holding three
// distinct job ids and evaluates every non-identity arrangement of
// their genes (5 of the 6 permutations of 3 elements), keeping
// whichever arrangement — including the unmutated original — decodes
// to the lowest makespan. decode is typically a *chromosome.Decoder's
// MustMakespan method; the mutation never worsens its input. If fewer
// than 3 distinct job ids appear in c, no such triple exists and c is
// returned unchanged.
func BestOfPermutationMutation(c chromosome.Chromosome, decode func(chromosome.Chromosome) int, rng *rand.Rand) chromosome.Chromosome {
	i, j, k, ok := distinctJobTriple(c, rng)
	if !ok {
		return c.Clone()
	}
	vals := [3]jsp.JobID{c[i], c[j], c[k]}

	best := c.Clone()
	bestScore := decode(best)

	for _, perm := range nonIdentityTriplePerms {
		cand := c.Clone()
		cand[i], cand[j], cand[k] = vals[perm[0]], vals[perm[1]], vals[perm[2]]
		if score := decode(cand); score < bestScore {
			bestScore = score
			best = cand
		}
	}

	return best
}

// nonIdentityTriplePerms are the 5 permutations of (0,1,2) other than
// the identity (0,1,2) itself.
var nonIdentityTriplePerms = [5][3]int{
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// distinctTripleAttempts bounds the retry loop in distinctJobTriple: a
// safety net, not a tuning knob, for chromosomes with very few
// distinct job ids relative to their length.
const distinctTripleAttempts = 100

// distinctJobTriple draws three positions whose genes are three
// pairwise distinct job ids, retrying the draw until it succeeds or
// distinctTripleAttempts is exhausted. Reports false if c is too
// short, or has too few distinct job ids, for such a triple to exist
// within the attempt budget.
func distinctJobTriple(c chromosome.Chromosome, rng *rand.Rand) (int, int, int, bool) {
	n := len(c)
	if n < 3 {
		return 0, 0, 0, false
	}
	for attempt := 0; attempt < distinctTripleAttempts; attempt++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		for j == i {
			j = rng.Intn(n)
		}
		k := rng.Intn(n)
		for k == i || k == j {
			k = rng.Intn(n)
		}
		if c[i] != c[j] && c[j] != c[k] && c[i] != c[k] {
			return i, j, k, true
		}
	}
	return 0, 0, 0, false
}
