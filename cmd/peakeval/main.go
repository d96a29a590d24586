// Command peakeval evaluates the quality of a peak realignment against a
// ground truth: it matches the realigned peak set to the peaks of a
// reference maximum spectrum and reports precision, recall, missing-peak
// statistics, noise ratio and intensity sum ratio.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aspect-analytics/peakeval/internal/evaluate"
	"github.com/aspect-analytics/peakeval/internal/npy"
	"github.com/aspect-analytics/peakeval/internal/scoring"
)

// Format of the JSON result, so output from old versions stays parseable
// if it ever changes.
const outputFormatVersion = "1.0"

type params struct {
	realignedFilename *string
	spectraFilename   *string
	maxFilename       *string
	jsonFilename      *string
	tolerance         *int
	prominence        *float64
	noiseSigmaFactor  *float64
}

// jsonResult wraps the evaluation result with a format version for the
// machine-readable output.
type jsonResult struct {
	PeakEvalVersion string
	evaluate.Result
}

func usage() {
	exeName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr,
		`USAGE:
  %s [options] -realigned <npy> -spectra <npy> -max <npy>

  This program scores a peak realignment of MALDI spectra against the peaks
  of a reference maximum spectrum. Inputs are NumPy .npy arrays:
    -realigned: realigned peak-picked spectra, shape (n, 2, npeaks)
    -spectra:   full spectra the realignment was computed from, shape (n, 2, m)
    -max:       point-wise maximum spectrum, shape (m,)

OPTIONS:
`, exeName)
	flag.PrintDefaults()
}

func sanitizeParams(par *params) {
	exeName := filepath.Base(os.Args[0])
	for _, f := range []*string{par.realignedFilename, par.spectraFilename, par.maxFilename} {
		if *f == "" {
			fmt.Fprintf(os.Stderr, `Options -realigned, -spectra and -max are required.
Type %s --help for usage
`, exeName)
			os.Exit(2)
		}
	}
	if *par.tolerance <= 0 || *par.prominence < 0 || *par.noiseSigmaFactor < 0 {
		fmt.Fprintf(os.Stderr, `Tolerance must be positive, prominence and noisefactor non-negative.
Type %s --help for usage
`, exeName)
		os.Exit(2)
	}
}

func loadSpectra(path string) ([]scoring.Spectrum, error) {
	a, err := npy.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return evaluate.SpectraFromArray(a)
}

func loadVector(path string) ([]float64, error) {
	a, err := npy.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(a.Shape) != 1 {
		return nil, fmt.Errorf("%s: want a 1-dimensional array, got shape %v: %w",
			path, a.Shape, scoring.ErrShapeMismatch)
	}
	return a.Data, nil
}

func writeResult(filename string, res evaluate.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	e := json.NewEncoder(f)
	e.SetIndent(``, `  `) // Make output easier to read for humans
	return e.Encode(jsonResult{PeakEvalVersion: outputFormatVersion, Result: res})
}

func printResult(w io.Writer, res evaluate.Result) {
	fmt.Fprintf(w, "Precision=%g recall=%g\n", res.Precision, res.Recall)
	fmt.Fprintf(w, "Missing peaks=%d max=%g median=%g mean=%g stddev=%g\n",
		res.MissingCount, res.MissingMax, res.MissingMedian, res.MissingMean, res.MissingStddev)
	fmt.Fprintf(w, "Noise sigma=%g median=%g\n", res.NoiseSigma, res.NoiseMedian)
	fmt.Fprintf(w, "Noise ratio=%g\n", res.NoiseProportion)
	fmt.Fprintf(w, "Sum full=%g sum realigned=%g ratio=%g\n",
		res.SumFull, res.SumRealigned, res.SumRatio)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var par params

	par.realignedFilename = flag.String("realigned", "",
		"`filename` of realigned peak-picked spectra (.npy)")
	par.spectraFilename = flag.String("spectra", "",
		"`filename` of full spectra (.npy)")
	par.maxFilename = flag.String("max", "",
		"`filename` of the point-wise maximum spectrum (.npy)")
	par.jsonFilename = flag.String("json", "",
		"`filename` for machine-readable JSON output (optional)")
	par.tolerance = flag.Int("tolerance", scoring.RealignTolerance,
		`maximum index distance between a realigned peak and a reference peak
for the two to count as the same peak`)
	par.prominence = flag.Float64("prominence", 5.0,
		`minimum prominence for peak picking on the maximum spectrum`)
	par.noiseSigmaFactor = flag.Float64("noisefactor", 3.0,
		`sigma multiplier of the noise threshold (median + k*sigma) applied
to the intensities of missing peaks`)
	flag.Usage = usage
	flag.Parse()
	sanitizeParams(&par)

	realigned, err := loadSpectra(*par.realignedFilename)
	if err != nil {
		log.Fatalf("reading realigned spectra: %v", err)
	}
	full, err := loadSpectra(*par.spectraFilename)
	if err != nil {
		log.Fatalf("reading full spectra: %v", err)
	}
	maxSpectrum, err := loadVector(*par.maxFilename)
	if err != nil {
		log.Fatalf("reading maximum spectrum: %v", err)
	}

	opts := evaluate.Options{
		Tolerance:        *par.tolerance,
		Prominence:       *par.prominence,
		NoiseSigmaFactor: *par.noiseSigmaFactor,
	}
	res, err := evaluate.Evaluate(realigned, full, maxSpectrum, opts)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}

	printResult(os.Stdout, res)
	if *par.jsonFilename != "" {
		if err := writeResult(*par.jsonFilename, res); err != nil {
			log.Fatalf("writing %s: %v", *par.jsonFilename, err)
		}
	}
}
