package main

import (
	"flag"
	"fmt"
	"github.com/nithishbn/MotifFinder/search"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

func medianUsage(medianFlags *flag.FlagSet) {
	fmt.Print(
		"median - run the Median String algorithm\n" +
			"Exhaustively scans all 4^k patterns for the one minimizing the total distance\n" +
			"to the sequences. Exact and deterministic, but runtime grows 4x with every\n" +
			"+1 to k. Values of k beyond about 12 are impractical.\n\n" +
			"Usage:\n" +
			"  motiffinder median [options] -i input.fasta -k 8\n\n" +
			"Options:\n")
	medianFlags.PrintDefaults()
}

func runMedian(args []string) {
	var err error
	medianFlags := flag.NewFlagSet("median", flag.ExitOnError)
	opts := addGlobalFlags(medianFlags)
	err = medianFlags.Parse(args)
	exception.PanicOnErr(err)
	medianFlags.Usage = func() { medianUsage(medianFlags) }

	if msg := checkGlobalOpts(opts); msg != "" {
		medianFlags.Usage()
		errExit(msg)
	}
	if *opts.k > 12 {
		log.Println("WARNING: median string is exhaustive, runtime grows 4x with every +1 to k. This may take an extremely long time.")
	}

	findMotifs(opts, search.Settings{
		Algorithm: search.MedianString,
		K:         *opts.k,
		Extra:     *opts.extra,
		Threads:   *opts.threads,
		Verbose:   *opts.verbose,
	})
}
