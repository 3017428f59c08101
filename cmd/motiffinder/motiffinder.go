package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "1.1.0"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to motiffinder by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"gibbs", runGibbs, "run the Gibbs Sampler algorithm"},
	{"median", runMedian, "run the Median String algorithm (slow for large values of k)"},
	{"randomized", runRandomized, "run the Randomized Motif Search algorithm"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: motiffinder (discover conserved motifs across DNA sequences)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tmotiffinder <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and return
	if command == nil {
		flag.Usage()
		return
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// globalOpts holds the flags shared by every subcommand. Each subcommand
// registers them on its own flag set so usage output stays per-command.
type globalOpts struct {
	input      *string
	k          *int
	extra      *float64
	numEntries *int
	output     *string
	align      *bool
	seed       *int64
	threads    *int
	graph      *bool
	plotScores *string
	verbose    *int
}

func addGlobalFlags(fs *flag.FlagSet) *globalOpts {
	var opts globalOpts
	opts.input = fs.String("i", "", "Input FASTA file with sequences to search.")
	opts.k = fs.Int("k", 0, "Motif length.")
	opts.extra = fs.Float64("e", 1, "Pseudocount added to every profile cell before normalization.")
	opts.numEntries = fs.Int("n", 0, "Max number of FASTA records to read. 0 for all records.")
	opts.output = fs.String("o", "stdout", "Output file for results.")
	opts.align = fs.Bool("a", false, "Locate the discovered motifs in each input sequence and rank the top motifs by local alignment score.")
	opts.seed = fs.Int64("seed", -1, "Seed for the random number generator. -1 derives a seed from the clock. Runs with the same seed and inputs give identical results.")
	opts.threads = fs.Int("threads", 1, "Number of processor threads to use.")
	opts.graph = fs.Bool("graph", false, "Print a terminal chart of the best score per run.")
	opts.plotScores = fs.String("plotScores", "", "Save a histogram of best scores per run to this file (png/pdf/svg by extension).")
	opts.verbose = fs.Int("verbose", 0, "Level of verbosity in log.")
	return &opts
}

// checkGlobalOpts validates flags every subcommand requires. Returns an error
// string for errExit, or empty when the options are valid.
func checkGlobalOpts(opts *globalOpts) string {
	if *opts.input == "" || *opts.k == 0 {
		return "\nERROR: must specify fasta (-i) and motif length (-k)"
	}
	if *opts.k < 0 {
		return "\nERROR: motif length (-k) must be >= 1"
	}
	if *opts.extra < 0 {
		return "\nERROR: pseudocount (-e) must be >= 0"
	}
	if *opts.threads < 1 {
		return "\nERROR: threads must be >= 1"
	}
	return ""
}
