// Command relabel renames the cluster labels of a segmented MALDI image to
// match those of a reference segmentation, so that cluster numbers are
// comparable between runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aspect-analytics/peakeval/internal/cluster"
	"github.com/aspect-analytics/peakeval/internal/npy"
)

type params struct {
	inputFilename     *string
	referenceFilename *string
	outputFilename    *string
}

func usage() {
	exeName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr,
		`USAGE:
  %s -i <npy> -r <npy> -o <npy>

  This program renames the cluster labels of an input label image so that
  they match a reference label image of the same shape. For each reference
  label, the input cluster with the median label value over the reference
  region takes over the reference label.

OPTIONS:
`, exeName)
	flag.PrintDefaults()
}

func sanitizeParams(par *params) {
	exeName := filepath.Base(os.Args[0])
	if *par.inputFilename == "" || *par.referenceFilename == "" || *par.outputFilename == "" {
		fmt.Fprintf(os.Stderr, `Options -i, -r and -o are required.
Type %s --help for usage
`, exeName)
		os.Exit(2)
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var par params

	par.inputFilename = flag.String("i", "",
		"`filename` of the input label image (.npy)")
	par.referenceFilename = flag.String("r", "",
		"`filename` of the reference label image (.npy)")
	par.outputFilename = flag.String("o", "",
		"`filename` of the relabeled output image (.npy)")
	flag.Usage = usage
	flag.Parse()
	sanitizeParams(&par)

	img, err := npy.ReadFile(*par.inputFilename)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	ref, err := npy.ReadFile(*par.referenceFilename)
	if err != nil {
		log.Fatalf("reading reference: %v", err)
	}

	relabeled, err := cluster.Relabel(img.Ints(), ref.Ints())
	if err != nil {
		log.Fatalf("relabeling: %v", err)
	}

	out := &npy.Array{Shape: img.Shape, Data: make([]float64, len(relabeled))}
	for i, l := range relabeled {
		out.Data[i] = float64(l)
	}
	if err := npy.WriteFile(*par.outputFilename, out); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}
