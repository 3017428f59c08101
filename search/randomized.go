package search

import (
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/rand"
)

// randomizedRestart runs one greedy trajectory: start from a random motif
// set, then repeatedly rebuild the profile and replace every motif with its
// sequence's most probable k-mer until the score stops strictly improving.
// Returns the best motif set of the trajectory and its score. The score
// never increases between iterations, and the loop terminates because each
// iteration must strictly improve a bounded non-negative score to continue.
func randomizedRestart(seqs []fasta.Fasta, k int, extra float64, rng *rand.Rand) ([][]dna.Base, int) {
	best := initMotifs(seqs, k, rng)
	bestScore := motif.SetScore(best)

	var p motif.Profile
	var err error
	for {
		p, err = motif.BuildProfile(best, k, extra)
		exception.PanicOnErr(err)
		next := make([][]dna.Base, len(seqs))
		for i := range seqs {
			next[i], _, err = motif.MostProbableKmer(seqs[i].Seq, k, p)
			exception.PanicOnErr(err)
		}
		score := motif.SetScore(next)
		if score >= bestScore {
			return best, bestScore
		}
		best = next
		bestScore = score
	}
}
