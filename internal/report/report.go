// Package report computes per-peak intensity statistics over a MALDI image
// datacube acquired as a grid of samples and replicates, used to judge the
// reproducibility of annotated species across acquisitions.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aspect-analytics/peakeval/internal/npy"
	"github.com/aspect-analytics/peakeval/internal/scoring"

	"gonum.org/v1/gonum/stat"
)

// PeakStats summarizes one peak channel of the datacube. The "samples"
// statistics aggregate replicate-averaged intensities over the sample axis;
// the "replicates" statistics aggregate sample-averaged intensities over the
// replicate axis. Variability is the coefficient of variation (stddev/mean).
type PeakStats struct {
	Mz                    float64
	VariabilitySamples    float64
	AverageSamples        float64
	StddevSamples         float64
	VariabilityReplicates float64
	AverageReplicates     float64
	StddevReplicates      float64
}

// Compute derives the peak statistics from a datacube of shape
// (samples, replicates, peaks). mzs assigns an m/z to each peak channel and
// must match the last cube dimension.
func Compute(cube *npy.Array, mzs []float64) ([]PeakStats, error) {
	if len(cube.Shape) != 3 {
		return nil, fmt.Errorf("report: want shape (samples, replicates, peaks), got %v: %w",
			cube.Shape, scoring.ErrShapeMismatch)
	}
	nSamples, nReplicates, nPeaks := cube.Shape[0], cube.Shape[1], cube.Shape[2]
	if len(mzs) != nPeaks {
		return nil, fmt.Errorf("report: %d m/z values for %d peak channels: %w",
			len(mzs), nPeaks, scoring.ErrShapeMismatch)
	}

	stats := make([]PeakStats, nPeaks)
	sampleMeans := make([]float64, nSamples)       // replicate-averaged, per sample
	replicateMeans := make([]float64, nReplicates) // sample-averaged, per replicate
	for p := 0; p < nPeaks; p++ {
		for s := 0; s < nSamples; s++ {
			var sum float64
			for r := 0; r < nReplicates; r++ {
				sum += cube.At(s, r, p)
			}
			sampleMeans[s] = sum / float64(nReplicates)
		}
		for r := 0; r < nReplicates; r++ {
			var sum float64
			for s := 0; s < nSamples; s++ {
				sum += cube.At(s, r, p)
			}
			replicateMeans[r] = sum / float64(nSamples)
		}

		avgRepl := stat.Mean(sampleMeans, nil)
		stdRepl := stat.PopStdDev(sampleMeans, nil)
		avgSamp := stat.Mean(replicateMeans, nil)
		stdSamp := stat.PopStdDev(replicateMeans, nil)

		stats[p] = PeakStats{
			Mz:                    mzs[p],
			VariabilitySamples:    stdSamp / avgSamp,
			AverageSamples:        avgSamp,
			StddevSamples:         stdSamp,
			VariabilityReplicates: stdRepl / avgRepl,
			AverageReplicates:     avgRepl,
			StddevReplicates:      stdRepl,
		}
	}
	return stats, nil
}

// WriteCSV writes the statistics table with a header row.
func WriteCSV(w io.Writer, stats []PeakStats) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	header := []string{"m/z",
		"Variability samples", "Average samples", "Stddev samples",
		"Variability replicates", "Average replicates", "Stddev replicates"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range stats {
		row := []string{
			formatFloat(s.Mz),
			formatFloat(s.VariabilitySamples),
			formatFloat(s.AverageSamples),
			formatFloat(s.StddevSamples),
			formatFloat(s.VariabilityReplicates),
			formatFloat(s.AverageReplicates),
			formatFloat(s.StddevReplicates),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
