package main

import (
	"flag"
	"github.com/nithishbn/MotifFinder/locate"
	"github.com/nithishbn/MotifFinder/search"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"os"
	"strings"
	"testing"
	"time"
)

func TestUniqueMotifs(t *testing.T) {
	motifs := [][]dna.Base{
		dna.StringToBases("GGGG"),
		dna.StringToBases("AAAA"),
		dna.StringToBases("GGGG"),
		dna.StringToBases("CCCC"),
	}
	unique := uniqueMotifs(motifs)
	if strings.Join(unique, " ") != "AAAA CCCC GGGG" {
		t.Error("problem with unique motifs", unique)
	}
}

func TestCheckGlobalOpts(t *testing.T) {
	parse := func(args []string) *globalOpts {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		opts := addGlobalFlags(fs)
		err := fs.Parse(args)
		exception.PanicOnErr(err)
		return opts
	}

	if msg := checkGlobalOpts(parse([]string{"-i", "in.fasta", "-k", "8"})); msg != "" {
		t.Error("problem with valid options rejected", msg)
	}
	if msg := checkGlobalOpts(parse([]string{"-k", "8"})); msg == "" {
		t.Error("problem with missing input accepted")
	}
	if msg := checkGlobalOpts(parse([]string{"-i", "in.fasta"})); msg == "" {
		t.Error("problem with missing motif length accepted")
	}
	if msg := checkGlobalOpts(parse([]string{"-i", "in.fasta", "-k", "-3"})); msg == "" {
		t.Error("problem with negative motif length accepted")
	}
	if msg := checkGlobalOpts(parse([]string{"-i", "in.fasta", "-k", "8", "-e", "-1"})); msg == "" {
		t.Error("problem with negative pseudocount accepted")
	}
	if msg := checkGlobalOpts(parse([]string{"-i", "in.fasta", "-k", "8", "-threads", "0"})); msg == "" {
		t.Error("problem with zero threads accepted")
	}
}

func TestWriteResults(t *testing.T) {
	s := search.Settings{Algorithm: search.GibbsSampler, K: 4, Restarts: 3, Iterations: 50}
	res := search.Result{
		Motifs:        [][]dna.Base{dna.StringToBases("GATT"), dna.StringToBases("GATT"), dna.StringToBases("GATC")},
		Consensus:     dna.StringToBases("GATT"),
		Score:         1,
		RestartScores: []int{1, 2, 1},
	}
	unique := uniqueMotifs(res.Motifs)
	windows := []locate.Window{{Record: "s1", Start: 3, Kmer: dna.StringToBases("GATT"), Prob: 0.5}}
	top := []locate.ScoredMotif{{Motif: dna.StringToBases("GATT"), Score: 8}}
	startTime := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	writeResults("testdata/results.txt", s, 3, startTime, res, unique, windows, top)

	raw, err := os.ReadFile("testdata/results.txt")
	exception.PanicOnErr(err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	expected := []string{
		"MotifFinder " + version,
		"Command: Gibbs Sampler",
		"k: 4",
		"number of entries: 3",
		"runs: 3",
		"iterations: 50",
		"Start time: 2024-05-01 12:30:00",
		"Consensus string: GATT",
		"Unique motifs: GATC GATT",
		"Best motif: GATT",
		"Best motif score: 8",
		strings.Repeat("_", 89),
		">motif 1",
		"GATT",
		">motif 2",
		"GATT",
		">motif 3",
		"GATC",
		"#Alignment#\tRecord\tStart\tKmer\tProbability",
		"#Alignment#\ts1\t3\tGATT\t0.5",
	}
	if len(lines) != len(expected) {
		t.Error("problem with results line count", len(lines), len(expected))
	}
	for i := range expected {
		if i < len(lines) && lines[i] != expected[i] {
			t.Error("problem with results line", i, lines[i])
		}
	}
}

func TestFindMotifs(t *testing.T) {
	fs := flag.NewFlagSet("randomized", flag.ContinueOnError)
	opts := addGlobalFlags(fs)
	err := fs.Parse([]string{"-i", "testdata/promoters.fasta", "-k", "6", "-seed", "42", "-o", "testdata/out.txt", "-a"})
	exception.PanicOnErr(err)

	findMotifs(opts, search.Settings{
		Algorithm: search.Randomized,
		K:         *opts.k,
		Extra:     *opts.extra,
		Restarts:  20,
		Threads:   *opts.threads,
		Verbose:   *opts.verbose,
	})

	raw, err := os.ReadFile("testdata/out.txt")
	exception.PanicOnErr(err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if lines[0] != "MotifFinder "+version || lines[1] != "Command: Randomized" {
		t.Error("problem with results header", lines[0], lines[1])
	}

	var motifLines, alignLines int
	var sawSeparator bool
	for _, line := range lines {
		if line == strings.Repeat("_", 89) {
			sawSeparator = true
		}
		if strings.HasPrefix(line, ">motif ") {
			motifLines++
		}
		if strings.HasPrefix(line, "#Alignment#\t") {
			alignLines++
		}
	}
	if !sawSeparator {
		t.Error("problem with missing separator line")
	}
	if motifLines != 4 {
		t.Error("problem with one motif block per record", motifLines)
	}
	if alignLines != 5 {
		t.Error("problem with alignment table rows", alignLines)
	}
}

func TestScoreGraph(t *testing.T) {
	chart := scoreGraph([]int{5, 3, 4, 2, 2, 6})
	if chart == "" {
		t.Error("problem with empty score chart")
	}
}

func TestPlotRestartScores(t *testing.T) {
	plotRestartScores([]int{5, 3, 4, 2, 2, 6, 4, 3}, "testdata/scores.png")
	info, err := os.Stat("testdata/scores.png")
	exception.PanicOnErr(err)
	if info.Size() == 0 {
		t.Error("problem with empty score plot")
	}
}
