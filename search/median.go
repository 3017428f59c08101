package search

import (
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/pbenner/threadpool"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"log"
	"time"
)

// candidates scanned per threadpool job
const medianChunkSize = 4096

// indexToPattern writes the base-4 digits of idx into pattern, most
// significant digit first, so increasing idx walks the pattern space in
// lexicographic order (A < C < G < T). Memory stays O(k) no matter how many
// candidates are enumerated.
func indexToPattern(idx uint64, pattern []dna.Base) {
	for i := len(pattern) - 1; i >= 0; i-- {
		pattern[i] = dna.Base(idx & 3)
		idx >>= 2
	}
}

// patternDistance sums, over all sequences, the minimum Hamming distance
// between pattern and any window of the sequence.
func patternDistance(pattern []dna.Base, seqs []fasta.Fasta) int {
	k := len(pattern)
	var total int
	for _, s := range seqs {
		bestDist := k + 1
		for i := 0; i+k <= len(s.Seq); i++ {
			if d := motif.Hamming(pattern, s.Seq[i:i+k]); d < bestDist {
				bestDist = d
				if bestDist == 0 {
					break
				}
			}
		}
		total += bestDist
	}
	return total
}

type medianChunk struct {
	idx  uint64
	dist int
}

// medianString exhaustively scans all 4^k candidate patterns and returns the
// one minimizing the total distance to the sequences, ties to the first
// candidate in enumeration order. The index space is split into chunks
// scanned in parallel; each chunk records its winner in its own slot and the
// final reduce walks chunks in order, so the result is identical for any
// thread count.
func medianString(seqs []fasta.Fasta, k, threads, verbose int) ([]dna.Base, int) {
	if threads < 1 {
		threads = 1
	}
	total := uint64(1) << (2 * uint(k))
	nChunks := int((total + medianChunkSize - 1) / medianChunkSize)
	if verbose > 0 {
		log.Printf("scanning %d candidate patterns in %d chunks", total, nChunks)
	}
	startTime := time.Now().UnixMilli()

	results := make([]medianChunk, nChunks)
	pool := threadpool.New(threads, 100*threads)
	g := pool.NewJobGroup()
	err := pool.AddRangeJob(0, nChunks, g, func(chunk int, pool threadpool.ThreadPool, erf func() error) error {
		from := uint64(chunk) * medianChunkSize
		to := from + medianChunkSize
		if to > total {
			to = total
		}
		pattern := make([]dna.Base, k)
		best := medianChunk{idx: from, dist: len(seqs)*k + 1}
		for idx := from; idx < to; idx++ {
			indexToPattern(idx, pattern)
			if d := patternDistance(pattern, seqs); d < best.dist {
				best.idx = idx
				best.dist = d
			}
		}
		results[chunk] = best
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	if err = pool.Wait(g); err != nil {
		log.Fatal(err)
	}

	best := results[0]
	for _, res := range results[1:] {
		if res.dist < best.dist {
			best = res
		}
	}
	if verbose > 0 {
		log.Printf("scanned %d candidate patterns in %dms", total, time.Now().UnixMilli()-startTime)
	}

	pattern := make([]dna.Base, k)
	indexToPattern(best.idx, pattern)
	return pattern, best.dist
}
