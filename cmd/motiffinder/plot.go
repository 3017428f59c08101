package main

import (
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"log"
)

func scoresToFloats(scores []int) []float64 {
	vals := make([]float64, len(scores))
	for i := range scores {
		vals[i] = float64(scores[i])
	}
	return vals
}

// scoreGraph renders the best score of each run as a terminal chart.
func scoreGraph(scores []int) string {
	return asciigraph.Plot(scoresToFloats(scores), asciigraph.Height(10), asciigraph.Precision(0), asciigraph.Caption("best score per run"))
}

// plotRestartScores saves a histogram of the best score per run.
func plotRestartScores(scores []int, filename string) {
	hist, err := plotter.NewHist(plotter.Values(scoresToFloats(scores)), 16)
	exception.PanicOnErr(err)

	pl := plot.New()
	pl.Add(hist)
	pl.Title.Text = "Best score per run"
	pl.X.Label.Text = "Score"
	pl.Y.Label.Text = "Runs"

	err = pl.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
	exception.PanicOnErr(err)
	log.Printf("saved score plot to %s", filename)
}

// logScoreStats logs summary statistics over the best score of each run.
func logScoreStats(scores []int) {
	mean, std := stat.MeanStdDev(scoresToFloats(scores), nil)
	log.Printf("run scores: mean %.2f, stdev %.2f", mean, std)
}
