package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	sim "github.com/salvo-sim/salvo-sim/sim"
)

const maxBarWidth = 40

// PrintSummary renders the run summary as text: headline penetration block,
// a mean-metrics table, and frequency histograms of the two raw per-trial
// sequences. The bin count is the caller's choice; the engine has no opinion
// on display units.
func PrintSummary(w io.Writer, s *sim.Summary, binCount int) {
	fmt.Fprintln(w, "=== Engagement Summary ===")
	fmt.Fprintf(w, "Run ID               : %s\n", s.RunID)
	fmt.Fprintf(w, "Trials               : %d\n", s.Trials)
	fmt.Fprintf(w, "Real warheads/salvo  : %d\n", s.RealWarheads)
	fmt.Fprintf(w, "Mean penetrated      : %.3f\n", s.MeanPenetrated)
	fmt.Fprintf(w, "Penetrated P10/50/90 : %.1f / %.1f / %.1f\n", s.PenetratedP10, s.PenetratedP50, s.PenetratedP90)
	fmt.Fprintf(w, "Penetration rate     : %.2f%%\n", s.PenetrationRate*100)

	printMeansTable(w, s)

	printHistogram(w, "Penetrated real warheads per trial", s.Penetrated, binCount)
	printHistogram(w, "Total shots per trial", s.ShotsTotal, binCount)
}

// printMeansTable renders the per-trial mean of every diagnostic counter.
func printMeansTable(w io.Writer, s *sim.Summary) {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Mean/trial")

	rows := []struct {
		name  string
		value float64
	}{
		{"Intercepted warheads", s.MeanIntercepted},
		{"Detected objects", s.MeanDetectedObjects},
		{"Detected real warheads", s.MeanDetectedRealWarheads},
		{"Classifier true positives", s.MeanTruePositives},
		{"Classifier false negatives", s.MeanFalseNegatives},
		{"Classifier false positives", s.MeanFalsePositives},
		{"Shots fired", s.MeanShotsTotal},
		{"Shots at warheads", s.MeanShotsAtWarheads},
		{"Shots at decoys", s.MeanShotsAtDecoys},
		{"Inventory remaining", s.MeanInventoryRemaining},
		{"System up fraction", s.MeanSystemUp},
	}
	for _, r := range rows {
		table.Append(r.name, fmt.Sprintf("%.3f", r.value))
	}
	table.Render()
}

// histogramBin is one frequency bin over a raw per-trial sequence.
type histogramBin struct {
	Low, High int // inclusive value range covered by the bin
	Count     int
}

// binValues buckets integer values into binCount equal-width bins spanning
// [min, max]. A non-positive binCount falls back to 10; a constant sequence
// collapses to a single bin.
func binValues(values []int, binCount int) []histogramBin {
	if len(values) == 0 {
		return nil
	}
	if binCount <= 0 {
		binCount = 10
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo + 1
	if span < binCount {
		binCount = span
	}
	width := span / binCount
	if span%binCount != 0 {
		width++
	}
	// Rounding the width up can leave trailing bins past the data; resize
	// and clamp so the last bin never labels values the sequence lacks.
	binCount = (span + width - 1) / width

	hist := make([]histogramBin, binCount)
	for i := range hist {
		hist[i].Low = lo + i*width
		hist[i].High = hist[i].Low + width - 1
	}
	if hist[binCount-1].High > hi {
		hist[binCount-1].High = hi
	}
	for _, v := range values {
		hist[(v-lo)/width].Count++
	}
	return hist
}

func printHistogram(w io.Writer, title string, values []int, binCount int) {
	hist := binValues(values, binCount)
	if len(hist) == 0 {
		return
	}

	peak := 0
	for _, b := range hist {
		if b.Count > peak {
			peak = b.Count
		}
	}

	fmt.Fprintf(w, "\n%s\n", title)
	for _, b := range hist {
		label := fmt.Sprintf("%d", b.Low)
		if b.High > b.Low {
			label = fmt.Sprintf("%d-%d", b.Low, b.High)
		}
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("#", b.Count*maxBarWidth/peak)
		}
		fmt.Fprintf(w, "%12s | %-*s %d\n", label, maxBarWidth, bar, b.Count)
	}
}
