package motif

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

// LoadSequences reads FASTA records from filename and uppercases every
// sequence. When maxEntries is positive, only the first maxEntries records
// are kept.
func LoadSequences(filename string, maxEntries int) []fasta.Fasta {
	seqs := fasta.Read(filename)
	if maxEntries > 0 && len(seqs) > maxEntries {
		seqs = seqs[:maxEntries]
	}
	for i := range seqs {
		dna.AllToUpper(seqs[i].Seq)
	}
	return seqs
}

// ValidateSequences checks that seqs can support a motif search of length k:
// the collection is non-empty, every sequence is at least k long, and every
// base is one of A, C, G, or T. The first violation found is returned.
func ValidateSequences(seqs []fasta.Fasta, k int) error {
	if k < 1 {
		return fmt.Errorf("motif length must be positive, got %d", k)
	}
	if len(seqs) == 0 {
		return fmt.Errorf("no sequences to search")
	}
	for _, s := range seqs {
		if len(s.Seq) < k {
			return fmt.Errorf("sequence %s has length %d, shorter than motif length %d", s.Name, len(s.Seq), k)
		}
		for i, b := range s.Seq {
			if b > dna.T {
				return fmt.Errorf("sequence %s has an invalid base at position %d", s.Name, i)
			}
		}
	}
	return nil
}
