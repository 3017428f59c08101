package search

import (
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/rand"
	"testing"
)

func TestRandomizedIdenticalSequences(t *testing.T) {
	// identical records make every row pick the same window after one
	// profile step, so the search always reaches score 0
	seqs := []fasta.Fasta{
		{Name: "s1", Seq: dna.StringToBases("ACGTACGTACGTACGT")},
		{Name: "s2", Seq: dna.StringToBases("ACGTACGTACGTACGT")},
		{Name: "s3", Seq: dna.StringToBases("ACGTACGTACGTACGT")},
	}
	res, err := Run(seqs, Settings{Algorithm: Randomized, K: 4, Extra: 1, Restarts: 5, Seed: 11, Threads: 2})
	if err != nil {
		t.Error("problem running randomized search", err)
	}
	if res.Score != 0 {
		t.Error("problem with identical records converging", res.Score)
	}
	for i := range res.Motifs {
		if dna.BasesToString(res.Motifs[i]) != dna.BasesToString(res.Consensus) {
			t.Error("problem with motifs at score zero", i, dna.BasesToString(res.Motifs[i]))
		}
	}
}

func TestRandomizedRestartStream(t *testing.T) {
	seqs := plantedSeqs()
	s := Settings{Algorithm: Randomized, K: 6, Extra: 1, Restarts: 50, Seed: 3, Threads: 4}
	res, err := Run(seqs, s)
	if err != nil {
		t.Error("problem running randomized search", err)
	}

	// restart 0 rerun on its own rng stream must reproduce its recorded
	// score, and the overall best can only improve on it
	rng := rand.New(rand.NewSource(uint64(s.Seed)))
	_, baseline := randomizedRestart(seqs, s.K, s.Extra, rng)
	if res.RestartScores[0] != baseline {
		t.Error("problem with per restart rng streams", res.RestartScores[0], baseline)
	}
	if res.Score > baseline {
		t.Error("problem with best of restarts exceeding one restart", res.Score, baseline)
	}

	// a restart can only improve on its own starting motif set
	rng = rand.New(rand.NewSource(uint64(s.Seed)))
	initial := motif.SetScore(initMotifs(seqs, s.K, rng))
	if baseline > initial {
		t.Error("problem with a restart worsening its initial score", baseline, initial)
	}
}

func TestRandomizedThreads(t *testing.T) {
	seqs := plantedSeqs()
	s := Settings{Algorithm: Randomized, K: 6, Extra: 1, Restarts: 20, Seed: 13, Threads: 1}
	first, err := Run(seqs, s)
	if err != nil {
		t.Error("problem running randomized search", err)
	}
	s.Threads = 4
	second, err := Run(seqs, s)
	if err != nil {
		t.Error("problem running randomized search", err)
	}
	if !resultsEqual(first, second) {
		t.Error("problem with thread count changing the result", first.Score, second.Score)
	}
}
