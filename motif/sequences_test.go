package motif

import (
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"testing"
)

func TestLoadSequences(t *testing.T) {
	seqs := LoadSequences("testdata/promoters.fasta", 0)
	if len(seqs) != 4 {
		t.Error("problem with number of records", len(seqs))
	}
	if dna.BasesToString(seqs[1].Seq) != "ACGTACGTACGTACGTACGT" {
		t.Error("problem with uppercasing", dna.BasesToString(seqs[1].Seq))
	}
	if dna.BasesToString(seqs[3].Seq) != "ATGACCGGGATACTGACAGA" {
		t.Error("problem with uppercasing a mixed case record", dna.BasesToString(seqs[3].Seq))
	}

	capped := LoadSequences("testdata/promoters.fasta", 2)
	if len(capped) != 2 || capped[0].Name != "seq1" || capped[1].Name != "seq2" {
		t.Error("problem with capping records", len(capped))
	}
}

func TestValidateSequences(t *testing.T) {
	seqs := LoadSequences("testdata/promoters.fasta", 0)

	var err error
	err = ValidateSequences(seqs, 6)
	if err != nil {
		t.Error("problem validating clean records", err)
	}
	err = ValidateSequences(seqs, 0)
	if err == nil {
		t.Error("problem with zero motif length: expected an error")
	}
	err = ValidateSequences(seqs, 25)
	if err == nil {
		t.Error("problem with motif longer than every record: expected an error")
	}
	err = ValidateSequences(nil, 6)
	if err == nil {
		t.Error("problem with empty record set: expected an error")
	}

	ambiguous := []fasta.Fasta{{Name: "withN", Seq: dna.StringToBases("ACGTNACGT")}}
	err = ValidateSequences(ambiguous, 4)
	if err == nil {
		t.Error("problem with ambiguous base: expected an error")
	}
}
