// Package search implements the three motif discovery strategies (Median
// String, Randomized Motif Search, Gibbs Sampler) behind one entry point,
// with a shared restart harness that fans independent restarts out to worker
// goroutines and reduces them to the lowest-scoring motif set.
package search

import (
	"fmt"
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/rand"
	"log"
	"sync"
	"time"
)

// Algorithm selects the strategy Run executes.
type Algorithm byte

const (
	MedianString Algorithm = iota
	Randomized
	GibbsSampler
)

func (a Algorithm) String() string {
	switch a {
	case MedianString:
		return "Median String"
	case Randomized:
		return "Randomized"
	case GibbsSampler:
		return "Gibbs Sampler"
	}
	return "Unknown"
}

// Settings holds the parameters for one search invocation. Iterations only
// applies to GibbsSampler; Restarts and Iterations are ignored by
// MedianString. Threads below 1 runs single-threaded.
type Settings struct {
	Algorithm  Algorithm
	K          int
	Extra      float64
	Restarts   int
	Iterations int
	Seed       int64
	Threads    int
	Verbose    int
}

// Result is the outcome of a search: the discovered motif set (one k-mer per
// sequence for Randomized/GibbsSampler, the single minimizing pattern for
// MedianString), its consensus, its score, and the best score of every
// restart indexed by restart.
type Result struct {
	Motifs        [][]dna.Base
	Consensus     []dna.Base
	Score         int
	RestartScores []int
}

// Run validates settings and sequences, dispatches to the selected strategy,
// and returns the best motif set found. For a fixed Seed the result is
// reproducible regardless of Threads.
func Run(seqs []fasta.Fasta, s Settings) (Result, error) {
	if err := validate(seqs, s); err != nil {
		return Result{}, err
	}

	switch s.Algorithm {
	case MedianString:
		pattern, dist := medianString(seqs, s.K, s.Threads, s.Verbose)
		return Result{
			Motifs:        [][]dna.Base{pattern},
			Consensus:     pattern,
			Score:         dist,
			RestartScores: []int{dist},
		}, nil
	case Randomized:
		return runRestarts(seqs, s, func(rng *rand.Rand) ([][]dna.Base, int) {
			return randomizedRestart(seqs, s.K, s.Extra, rng)
		})
	case GibbsSampler:
		return runRestarts(seqs, s, func(rng *rand.Rand) ([][]dna.Base, int) {
			return gibbsRestart(seqs, s.K, s.Extra, s.Iterations, rng)
		})
	}
	return Result{}, fmt.Errorf("unknown algorithm: %d", s.Algorithm)
}

func validate(seqs []fasta.Fasta, s Settings) error {
	if err := motif.ValidateSequences(seqs, s.K); err != nil {
		return err
	}
	if s.Extra < 0 {
		return fmt.Errorf("pseudocount must be non-negative, got %v", s.Extra)
	}
	switch s.Algorithm {
	case MedianString:
		if s.K > 31 {
			return fmt.Errorf("motif length %d exceeds the enumerable pattern space, max is 31", s.K)
		}
	case Randomized:
		if s.Restarts < 1 {
			return fmt.Errorf("number of runs must be positive, got %d", s.Restarts)
		}
	case GibbsSampler:
		if s.Restarts < 1 {
			return fmt.Errorf("number of runs must be positive, got %d", s.Restarts)
		}
		if s.Iterations < 1 {
			return fmt.Errorf("number of iterations must be positive, got %d", s.Iterations)
		}
		if len(seqs) < 2 {
			return fmt.Errorf("gibbs sampling needs at least 2 sequences, got %d", len(seqs))
		}
	}
	return nil
}

// initMotifs draws one uniformly random window of length k from each
// sequence. Shared by the Randomized and Gibbs strategies so a restart's
// initial state depends only on its RNG stream.
func initMotifs(seqs []fasta.Fasta, k int, rng *rand.Rand) [][]dna.Base {
	motifs := make([][]dna.Base, len(seqs))
	for i := range seqs {
		start := rng.Intn(len(seqs[i].Seq) - k + 1)
		motifs[i] = seqs[i].Seq[start : start+k]
	}
	return motifs
}

type restartResult struct {
	idx    int
	motifs [][]dna.Base
	score  int
}

// runRestarts fans s.Restarts independent restarts out to worker goroutines.
// Each restart gets its own RNG stream seeded with the master seed plus the
// restart index, so scores depend only on the restart index and the
// reduction can break score ties by lowest index without losing
// reproducibility.
func runRestarts(seqs []fasta.Fasta, s Settings, restart func(rng *rand.Rand) ([][]dna.Base, int)) (Result, error) {
	threads := s.Threads
	if threads < 1 {
		threads = 1
	}

	inputChan := make(chan int, s.Restarts)
	outputChan := make(chan restartResult, 100)
	wg := new(sync.WaitGroup)
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go spawnRestartWorker(inputChan, outputChan, s.Seed, restart, wg)
	}
	for i := 0; i < s.Restarts; i++ {
		inputChan <- i
	}
	close(inputChan)

	// close output once all workers finish
	go func(*sync.WaitGroup) {
		wg.Wait()
		close(outputChan)
	}(wg)

	scores := make([]int, s.Restarts)
	best := restartResult{idx: -1}
	var done int
	lastCheckpointTime := time.Now().UnixMilli()
	for res := range outputChan {
		scores[res.idx] = res.score
		if best.idx == -1 || res.score < best.score || (res.score == best.score && res.idx < best.idx) {
			best = res
		}
		done++
		if s.Verbose > 0 && done%10 == 0 {
			currTime := time.Now().UnixMilli()
			log.Printf("completed %d of %d restarts in %dms", done, s.Restarts, currTime-lastCheckpointTime)
			lastCheckpointTime = currTime
		}
	}

	p, err := motif.BuildProfile(best.motifs, s.K, s.Extra)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Motifs:        best.motifs,
		Consensus:     p.Consensus(),
		Score:         best.score,
		RestartScores: scores,
	}, nil
}

func spawnRestartWorker(inputChan <-chan int, outputChan chan<- restartResult, seed int64, restart func(rng *rand.Rand) ([][]dna.Base, int), wg *sync.WaitGroup) {
	for idx := range inputChan {
		rng := rand.New(rand.NewSource(uint64(seed) + uint64(idx)))
		motifs, score := restart(rng)
		outputChan <- restartResult{idx: idx, motifs: motifs, score: score}
	}
	wg.Done()
}
