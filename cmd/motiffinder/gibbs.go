package main

import (
	"flag"
	"fmt"
	"github.com/nithishbn/MotifFinder/search"
	"github.com/vertgenlab/gonomics/exception"
)

func gibbsUsage(gibbsFlags *flag.FlagSet) {
	fmt.Print(
		"gibbs - run the Gibbs Sampler algorithm\n" +
			"Resamples one sequence's motif per iteration, weighted by the profile of the\n" +
			"remaining motifs. The best motif set seen across all iterations and runs wins.\n\n" +
			"Usage:\n" +
			"  motiffinder gibbs [options] -i input.fasta -k 8 -r 20 -t 100\n\n" +
			"Options:\n")
	gibbsFlags.PrintDefaults()
}

func runGibbs(args []string) {
	var err error
	gibbsFlags := flag.NewFlagSet("gibbs", flag.ExitOnError)
	opts := addGlobalFlags(gibbsFlags)
	runs := gibbsFlags.Int("r", 0, "Number of runs. Each run restarts the sampler from a fresh random motif set.")
	iterations := gibbsFlags.Int("t", 0, "Number of sampling iterations per run.")
	err = gibbsFlags.Parse(args)
	exception.PanicOnErr(err)
	gibbsFlags.Usage = func() { gibbsUsage(gibbsFlags) }

	if msg := checkGlobalOpts(opts); msg != "" {
		gibbsFlags.Usage()
		errExit(msg)
	}
	if *runs < 1 {
		gibbsFlags.Usage()
		errExit("\nERROR: number of runs (-r) must be >= 1")
	}
	if *iterations < 1 {
		gibbsFlags.Usage()
		errExit("\nERROR: number of iterations (-t) must be >= 1")
	}

	findMotifs(opts, search.Settings{
		Algorithm:  search.GibbsSampler,
		K:          *opts.k,
		Extra:      *opts.extra,
		Restarts:   *runs,
		Iterations: *iterations,
		Threads:    *opts.threads,
		Verbose:    *opts.verbose,
	})
}
