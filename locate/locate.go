// Package locate relocates discovered motifs in the original sequences. It
// is a reporting layer: nothing here feeds back into the search.
package locate

import (
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/vertgenlab/gonomics/align"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"sort"
	"sync"
)

var gapOpen int64 = -10
var gapExtend int64 = -10

// match 1, mismatch 0, N never matches
var motifScoreMatrix = [][]int64{
	{1, 0, 0, 0, 0},
	{0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0},
}

// Window is one sequence's best match to the discovered motif set: the
// window start, the k-mer at that window, and its probability under the
// profile of the final motif set.
type Window struct {
	Record string
	Start  int
	Kmer   []dna.Base
	Prob   float64
}

// Windows builds the profile of the final motif set and reports each
// sequence's most probable window, in input order.
func Windows(seqs []fasta.Fasta, motifs [][]dna.Base, k int, extra float64) ([]Window, error) {
	p, err := motif.BuildProfile(motifs, k, extra)
	if err != nil {
		return nil, err
	}
	ans := make([]Window, len(seqs))
	for i := range seqs {
		kmer, pos, err := motif.MostProbableKmer(seqs[i].Seq, k, p)
		if err != nil {
			return nil, err
		}
		prob, err := motif.KmerProbability(kmer, p)
		if err != nil {
			return nil, err
		}
		ans[i] = Window{Record: seqs[i].Name, Start: pos, Kmer: kmer, Prob: prob}
	}
	return ans, nil
}

// ScoredMotif is a motif pattern with its total local alignment score
// against all sequences.
type ScoredMotif struct {
	Motif []dna.Base
	Score int64
}

// TopMotifs ranks the unique patterns of a motif set by the sum of their
// local alignment scores against every sequence, highest first with ties
// broken by pattern order, and returns up to n of them. Scoring fans out to
// worker goroutines, one motif at a time.
func TopMotifs(seqs []fasta.Fasta, motifs [][]dna.Base, n, threads int) []ScoredMotif {
	unique := make(map[string]struct{})
	for _, m := range motifs {
		unique[dna.BasesToString(m)] = struct{}{}
	}
	patterns := maps.Keys(unique)
	slices.Sort(patterns)

	if threads < 1 {
		threads = 1
	}
	inputChan := make(chan string, len(patterns))
	outputChan := make(chan ScoredMotif, len(patterns))
	wg := new(sync.WaitGroup)
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go spawnScoreWorker(inputChan, outputChan, seqs, wg)
	}
	for _, pattern := range patterns {
		inputChan <- pattern
	}
	close(inputChan)

	go func(*sync.WaitGroup) {
		wg.Wait()
		close(outputChan)
	}(wg)

	ans := make([]ScoredMotif, 0, len(patterns))
	for sm := range outputChan {
		ans = append(ans, sm)
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Score != ans[j].Score {
			return ans[i].Score > ans[j].Score
		}
		return dna.BasesToString(ans[i].Motif) < dna.BasesToString(ans[j].Motif)
	})
	if n > len(ans) {
		n = len(ans)
	}
	return ans[:n]
}

func spawnScoreWorker(inputChan <-chan string, outputChan chan<- ScoredMotif, seqs []fasta.Fasta, wg *sync.WaitGroup) {
	var score, total int64
	for pattern := range inputChan {
		m := dna.StringToBases(pattern)
		total = 0
		for i := range seqs {
			score, _ = align.AffineGapLocal(seqs[i].Seq, m, motifScoreMatrix, gapOpen, gapExtend)
			total += score
		}
		outputChan <- ScoredMotif{Motif: m, Score: total}
	}
	wg.Done()
}
