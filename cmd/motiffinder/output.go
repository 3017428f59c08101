package main

import (
	"fmt"
	"github.com/nithishbn/MotifFinder/locate"
	"github.com/nithishbn/MotifFinder/motif"
	"github.com/nithishbn/MotifFinder/search"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"io"
	"log"
	"strings"
	"time"
)

// number of top-scoring motifs reported with -a
const topMotifCount = 5

// findMotifs is the shared driver behind every subcommand: load and validate
// the sequences, resolve the seed, run the selected search, then write the
// results and any requested reports.
func findMotifs(opts *globalOpts, s search.Settings) {
	startTime := time.Now()
	log.Printf("MotifFinder %s", version)
	log.Printf("loading sequences from %s", *opts.input)
	seqs := motif.LoadSequences(*opts.input, *opts.numEntries)
	log.Printf("loaded %d sequences", len(seqs))

	s.Seed = *opts.seed
	if s.Seed == -1 {
		s.Seed = startTime.UnixNano()
	}
	switch s.Algorithm {
	case search.MedianString:
		log.Printf("starting %s", s.Algorithm)
	default:
		log.Printf("using seed %d", s.Seed)
		log.Printf("starting %s with %d runs", s.Algorithm, s.Restarts)
	}

	res, err := search.Run(seqs, s)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("best score: %d", res.Score)
	log.Printf("consensus string: %s", dna.BasesToString(res.Consensus))
	unique := uniqueMotifs(res.Motifs)
	log.Printf("unique motifs: %s", strings.Join(unique, " "))

	var windows []locate.Window
	var top []locate.ScoredMotif
	if *opts.align {
		log.Println("aligning motifs to sequences")
		windows, err = locate.Windows(seqs, res.Motifs, s.K, s.Extra)
		if err != nil {
			log.Fatal(err)
		}
		top = locate.TopMotifs(seqs, res.Motifs, topMotifCount, *opts.threads)
		log.Printf("top %d motifs:", len(top))
		for i := range top {
			log.Printf("%d: %s", top[i].Score, dna.BasesToString(top[i].Motif))
		}
	}

	writeResults(*opts.output, s, len(seqs), startTime, res, unique, windows, top)
	if *opts.output != "stdout" {
		log.Printf("results saved to %s", *opts.output)
	}

	if *opts.graph && len(res.RestartScores) > 1 {
		fmt.Println(scoreGraph(res.RestartScores))
	}
	if *opts.plotScores != "" && len(res.RestartScores) > 1 {
		plotRestartScores(res.RestartScores, *opts.plotScores)
	}
	if *opts.verbose > 0 && len(res.RestartScores) > 1 {
		logScoreStats(res.RestartScores)
	}

	log.Printf("done in %.2f seconds", time.Since(startTime).Seconds())
}

// writeResults writes the run header, summary, and discovered motifs to
// filename, plus the per-sequence alignment table when the locator ran.
func writeResults(filename string, s search.Settings, numEntries int, startTime time.Time, res search.Result, unique []string, windows []locate.Window, top []locate.ScoredMotif) {
	out := fileio.EasyCreate(filename)

	fmt.Fprintf(out, "MotifFinder %s\n", version)
	fmt.Fprintf(out, "Command: %s\n", s.Algorithm)
	fmt.Fprintf(out, "k: %d\n", s.K)
	fmt.Fprintf(out, "number of entries: %d\n", numEntries)
	switch s.Algorithm {
	case search.Randomized:
		fmt.Fprintf(out, "runs: %d\n", s.Restarts)
	case search.GibbsSampler:
		fmt.Fprintf(out, "runs: %d\n", s.Restarts)
		fmt.Fprintf(out, "iterations: %d\n", s.Iterations)
	}
	fmt.Fprintf(out, "Start time: %s\n", startTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Consensus string: %s\n", dna.BasesToString(res.Consensus))
	fmt.Fprintf(out, "Unique motifs: %s\n", strings.Join(unique, " "))
	if len(top) > 0 {
		fmt.Fprintf(out, "Best motif: %s\n", dna.BasesToString(top[0].Motif))
		fmt.Fprintf(out, "Best motif score: %d\n", top[0].Score)
	}
	fmt.Fprintln(out, strings.Repeat("_", 89))
	for i := range res.Motifs {
		fmt.Fprintf(out, ">motif %d\n%s\n", i+1, dna.BasesToString(res.Motifs[i]))
	}
	if len(windows) > 0 {
		fmt.Fprintln(out, "#Alignment#\tRecord\tStart\tKmer\tProbability")
		for _, w := range windows {
			fmt.Fprintf(out, "#Alignment#\t%s\t%d\t%s\t%.6g\n", w.Record, w.Start, dna.BasesToString(w.Kmer), w.Prob)
		}
	}

	cleanup(out)
}

// uniqueMotifs returns the deduplicated motif patterns in alphabetical order.
func uniqueMotifs(motifs [][]dna.Base) []string {
	set := make(map[string]struct{})
	for _, m := range motifs {
		set[dna.BasesToString(m)] = struct{}{}
	}
	ans := maps.Keys(set)
	slices.Sort(ans)
	return ans
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
