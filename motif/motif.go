// Package motif implements the profile model used to score candidate motifs:
// positional count/probability matrices, consensus patterns, and k-mer
// likelihoods under a profile.
package motif

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/numbers"
	"log"
)

// Profile is a 4 x k matrix of per-position base probabilities. Rows are
// indexed by dna.Base for A, C, G, and T. Columns sum to 1 after pseudocount
// normalization.
type Profile [][]float64

// BuildProfile counts base occurrences per position across motifs, adds extra
// to every cell, and normalizes each column by (len(motifs) + 4*extra) so
// columns are probability distributions. All motifs must have length k.
func BuildProfile(motifs [][]dna.Base, k int, extra float64) (Profile, error) {
	if len(motifs) == 0 {
		return nil, fmt.Errorf("cannot build a profile from an empty motif set")
	}
	if k < 1 {
		return nil, fmt.Errorf("motif length must be positive, got %d", k)
	}
	if extra < 0 {
		return nil, fmt.Errorf("pseudocount must be non-negative, got %v", extra)
	}

	p := make(Profile, 4)
	for b := range p {
		p[b] = make([]float64, k)
		for i := range p[b] {
			p[b][i] = extra
		}
	}

	for _, m := range motifs {
		if len(m) != k {
			return nil, fmt.Errorf("motif %s has length %d, expected %d", dna.BasesToString(m), len(m), k)
		}
		for i, b := range m {
			if b > dna.T {
				return nil, fmt.Errorf("motif %s has an invalid base at position %d", dna.BasesToString(m), i)
			}
			p[b][i]++
		}
	}

	denom := float64(len(motifs)) + 4*extra
	for b := range p {
		for i := range p[b] {
			p[b][i] /= denom
		}
	}
	return p, nil
}

// Consensus returns the per-column most probable base. Ties resolve to the
// earlier base in alphabet order (A < C < G < T).
func (p Profile) Consensus() []dna.Base {
	ans := make([]dna.Base, len(p[dna.A]))
	for i := range ans {
		best := dna.A
		for b := dna.C; b <= dna.T; b++ {
			if p[b][i] > p[best][i] {
				best = b
			}
		}
		ans[i] = best
	}
	return ans
}

// KmerProbability multiplies the profile probabilities of the observed base
// at each position. A base outside A/C/G/T is an error, never a silent zero.
func KmerProbability(kmer []dna.Base, p Profile) (float64, error) {
	if len(kmer) != len(p[dna.A]) {
		return 0, fmt.Errorf("kmer %s has length %d, profile has %d columns", dna.BasesToString(kmer), len(kmer), len(p[dna.A]))
	}
	prob := 1.0
	for i, b := range kmer {
		if b > dna.T {
			return 0, fmt.Errorf("kmer %s has an invalid base at position %d", dna.BasesToString(kmer), i)
		}
		prob *= p[b][i]
	}
	return prob, nil
}

// MostProbableKmer scans every window of length k in seq and returns the one
// with the highest probability under p, together with its start position.
// Ties resolve to the lowest start position.
func MostProbableKmer(seq []dna.Base, k int, p Profile) ([]dna.Base, int, error) {
	if len(seq) < k {
		return nil, 0, fmt.Errorf("sequence of length %d has no windows of length %d", len(seq), k)
	}
	var best []dna.Base
	var bestPos int
	bestProb := -1.0
	for i := 0; i+k <= len(seq); i++ {
		prob, err := KmerProbability(seq[i:i+k], p)
		if err != nil {
			return nil, 0, err
		}
		if prob > bestProb {
			best = seq[i : i+k]
			bestPos = i
			bestProb = prob
		}
	}
	return best, bestPos, nil
}

// Hamming returns the number of mismatched positions between two equal-length
// patterns.
func Hamming(a, b []dna.Base) int {
	if len(a) != len(b) {
		log.Panicf("hamming distance requires equal lengths, got %d and %d\n", len(a), len(b))
	}
	var dist int
	for i := range a {
		if a[i] != b[i] {
			dist++
		}
	}
	return dist
}

// Score sums the Hamming distance from each motif to the consensus pattern.
// Lower is better; 0 means every motif equals the consensus.
func Score(motifs [][]dna.Base, consensus []dna.Base) int {
	var total int
	for _, m := range motifs {
		total += Hamming(m, consensus)
	}
	return total
}

// SetScore scores a motif set against its own consensus without building a
// profile: per column, the count of motifs disagreeing with the column's most
// common base. Equivalent to Score(motifs, consensus of motifs) for any
// pseudocount, since adding the same constant to all four counts never
// changes the argmax.
func SetScore(motifs [][]dna.Base) int {
	if len(motifs) == 0 {
		return 0
	}
	k := len(motifs[0])
	var total int
	var counts [4]int
	for i := 0; i < k; i++ {
		counts = [4]int{}
		for _, m := range motifs {
			counts[m[i]]++
		}
		max := counts[dna.A]
		for b := dna.C; b <= dna.T; b++ {
			max = numbers.Max(max, counts[b])
		}
		total += len(motifs) - max
	}
	return total
}
