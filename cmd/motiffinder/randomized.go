package main

import (
	"flag"
	"fmt"
	"github.com/nithishbn/MotifFinder/search"
	"github.com/vertgenlab/gonomics/exception"
)

func randomizedUsage(randomizedFlags *flag.FlagSet) {
	fmt.Print(
		"randomized - run the Randomized Motif Search algorithm\n" +
			"Greedy refinement from a random motif set, repeated across independent runs.\n" +
			"Each run converges to a local optimum; the best-scoring run wins.\n\n" +
			"Usage:\n" +
			"  motiffinder randomized [options] -i input.fasta -k 8 -r 100\n\n" +
			"Options:\n")
	randomizedFlags.PrintDefaults()
}

func runRandomized(args []string) {
	var err error
	randomizedFlags := flag.NewFlagSet("randomized", flag.ExitOnError)
	opts := addGlobalFlags(randomizedFlags)
	runs := randomizedFlags.Int("r", 0, "Number of runs. Each run restarts the search from a fresh random motif set.")
	err = randomizedFlags.Parse(args)
	exception.PanicOnErr(err)
	randomizedFlags.Usage = func() { randomizedUsage(randomizedFlags) }

	if msg := checkGlobalOpts(opts); msg != "" {
		randomizedFlags.Usage()
		errExit(msg)
	}
	if *runs < 1 {
		randomizedFlags.Usage()
		errExit("\nERROR: number of runs (-r) must be >= 1")
	}

	findMotifs(opts, search.Settings{
		Algorithm: search.Randomized,
		K:         *opts.k,
		Extra:     *opts.extra,
		Restarts:  *runs,
		Threads:   *opts.threads,
		Verbose:   *opts.verbose,
	})
}
