// Package annotation reads species annotation lists: semicolon-separated
// CSV files mapping an m/z value to the names of the annotated species at
// that mass. Annotation files come from several vendor tools and are not
// always UTF-8, so the input encoding is sniffed before parsing.
package annotation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrEmpty means the annotation file contains no rows.
var ErrEmpty = errors.New("annotation: empty file")

// Species is one annotated mass with the candidate species names assigned
// to it. Names may be empty when a column has no annotation for this mass.
type Species struct {
	Mz    float64
	Names []string
}

// Annotated reports whether at least one non-empty name is assigned.
func (s Species) Annotated() bool {
	for _, n := range s.Names {
		if n != "" {
			return true
		}
	}
	return false
}

// Read parses an annotation CSV. The first row is treated as a header when
// its first cell is empty, matching the files produced by the annotation
// tooling; otherwise generated column names ("Ion (#1)", ...) are returned.
func Read(r io.Reader) ([]Species, []string, error) {
	decoded, err := charset.NewReader(r, "text/csv")
	if err != nil {
		return nil, nil, fmt.Errorf("annotation: detecting charset: %w", err)
	}

	cr := csv.NewReader(decoded)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("annotation: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmpty
	}

	var columns []string
	hasHeader := rows[0][0] == ""
	if hasHeader {
		for _, name := range rows[0][1:] {
			columns = append(columns, DisplayName(name))
		}
		rows = rows[1:]
	}

	species := make([]Species, 0, len(rows))
	maxNames := 0
	for _, row := range rows {
		mz, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("annotation: bad m/z %q: %w", row[0], err)
		}
		names := make([]string, len(row)-1)
		copy(names, row[1:])
		if len(names) > maxNames {
			maxNames = len(names)
		}
		species = append(species, Species{Mz: mz, Names: names})
	}

	if columns == nil {
		for i := 0; i < maxNames; i++ {
			columns = append(columns, fmt.Sprintf("Ion (#%d)", i+1))
		}
	}
	return species, columns, nil
}

// DisplayName converts an internal species name of the form
// Mol_Adduct_Modif to the readable form "Mol.Modif (Adduct)".
func DisplayName(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return name
	}
	display := parts[0]
	if len(parts) > 2 {
		display += "." + strings.Join(parts[2:], ".")
	}
	return display + " (" + parts[1] + ")"
}
