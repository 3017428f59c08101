package search

import (
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// gibbsRestart runs one stochastic trajectory of the given number of
// iterations. Each iteration picks one sequence at random, builds the
// profile from all other motifs, and resamples that sequence's motif by
// probability-weighted draw over its windows. The sampled motif always
// replaces the current one so the walk can move uphill; the best set seen
// across all iterations is tracked separately and returned.
func gibbsRestart(seqs []fasta.Fasta, k int, extra float64, iterations int, rng *rand.Rand) ([][]dna.Base, int) {
	curr := initMotifs(seqs, k, rng)
	best := make([][]dna.Base, len(curr))
	copy(best, curr)
	bestScore := motif.SetScore(curr)

	loo := make([][]dna.Base, 0, len(curr)-1)
	for j := 0; j < iterations; j++ {
		i := rng.Intn(len(seqs))
		loo = append(loo[:0], curr[:i]...)
		loo = append(loo, curr[i+1:]...)
		p, err := motif.BuildProfile(loo, k, extra)
		exception.PanicOnErr(err)

		if m, ok := sampleKmer(seqs[i].Seq, k, p, rng); ok {
			curr[i] = m
		}
		if score := motif.SetScore(curr); score < bestScore {
			copy(best, curr)
			bestScore = score
		}
	}
	return best, bestScore
}

// sampleKmer draws one window of seq with probability proportional to its
// likelihood under p. Returns false when every window has probability zero
// and no draw can be made, which is only possible with a zero pseudocount;
// callers keep the current motif in that case.
func sampleKmer(seq []dna.Base, k int, p motif.Profile, rng *rand.Rand) ([]dna.Base, bool) {
	n := len(seq) - k + 1
	weights := make([]float64, n)
	var sum float64
	var err error
	for i := 0; i < n; i++ {
		weights[i], err = motif.KmerProbability(seq[i:i+k], p)
		exception.PanicOnErr(err)
		sum += weights[i]
	}
	if sum == 0 {
		return nil, false
	}

	idx, ok := sampleuv.NewWeighted(weights, rng).Take()
	if !ok {
		return nil, false
	}
	return seq[idx : idx+k], true
}
