// Command peakreport correlates an annotated species list with a MALDI
// image datacube and writes per-peak reproducibility statistics as CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aspect-analytics/peakeval/internal/annotation"
	"github.com/aspect-analytics/peakeval/internal/npy"
	"github.com/aspect-analytics/peakeval/internal/report"
	"github.com/aspect-analytics/peakeval/internal/scoring"
)

type params struct {
	imageFilename      *string
	annotationFilename *string
	outputFilename     *string
	curatedOnly        *bool
}

func usage() {
	exeName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr,
		`USAGE:
  %s [options] -i <npy> -a <csv> -o <csv>

  This program computes per-peak intensity statistics (average, standard
  deviation and variability across samples and replicates) from a MALDI
  image datacube of shape (samples, replicates, peaks), matched against a
  species annotation list, and writes the result as a CSV table.

OPTIONS:
`, exeName)
	flag.PrintDefaults()
}

func sanitizeParams(par *params) {
	exeName := filepath.Base(os.Args[0])
	if *par.imageFilename == "" || *par.annotationFilename == "" || *par.outputFilename == "" {
		fmt.Fprintf(os.Stderr, `Options -i, -a and -o are required.
Type %s --help for usage
`, exeName)
		os.Exit(2)
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var par params

	par.imageFilename = flag.String("i", "",
		"`filename` of the MALDI image datacube (.npy, shape (samples, replicates, peaks))")
	par.annotationFilename = flag.String("a", "",
		"`filename` of the species annotation list (semicolon-separated CSV)")
	par.outputFilename = flag.String("o", "",
		"`filename` of the output statistics table (CSV)")
	par.curatedOnly = flag.Bool("curated", false,
		`restrict the report to annotated peaks (at least one species name)`)
	flag.Usage = usage
	flag.Parse()
	sanitizeParams(&par)

	af, err := os.Open(*par.annotationFilename)
	if err != nil {
		log.Fatalf("opening annotation: %v", err)
	}
	species, columns, err := annotation.Read(af)
	af.Close()
	if err != nil {
		log.Fatalf("reading annotation: %v", err)
	}

	cube, err := npy.ReadFile(*par.imageFilename)
	if err != nil {
		log.Fatalf("reading image: %v", err)
	}
	if len(cube.Shape) != 3 {
		log.Fatalf("image: want shape (samples, replicates, peaks), got %v", cube.Shape)
	}
	if cube.Shape[2] != len(species) {
		log.Fatalf("image has %d peak channels, annotation has %d masses: %v",
			cube.Shape[2], len(species), scoring.ErrShapeMismatch)
	}

	if *par.curatedOnly {
		cube, species = curate(cube, species)
	}

	mzs := make([]float64, len(species))
	for i, s := range species {
		mzs[i] = s.Mz
	}
	stats, err := report.Compute(cube, mzs)
	if err != nil {
		log.Fatalf("computing statistics: %v", err)
	}

	out, err := os.Create(*par.outputFilename)
	if err != nil {
		log.Fatalf("creating output: %v", err)
	}
	if err := report.WriteCSV(out, stats); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d peaks, %d annotation columns, statistics written to %s\n",
		len(stats), len(columns), *par.outputFilename)
}

// curate drops peak channels without any species annotation, keeping cube
// and species aligned.
func curate(cube *npy.Array, species []annotation.Species) (*npy.Array, []annotation.Species) {
	keep := make([]int, 0, len(species))
	kept := make([]annotation.Species, 0, len(species))
	for i, s := range species {
		if s.Annotated() {
			keep = append(keep, i)
			kept = append(kept, s)
		}
	}

	nSamples, nReplicates := cube.Shape[0], cube.Shape[1]
	curated := &npy.Array{
		Shape: []int{nSamples, nReplicates, len(keep)},
		Data:  make([]float64, nSamples*nReplicates*len(keep)),
	}
	pos := 0
	for s := 0; s < nSamples; s++ {
		for r := 0; r < nReplicates; r++ {
			for _, p := range keep {
				curated.Data[pos] = cube.At(s, r, p)
				pos++
			}
		}
	}
	return curated, kept
}
