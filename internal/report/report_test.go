package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aspect-analytics/peakeval/internal/npy"
	"github.com/aspect-analytics/peakeval/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cube is 2 samples x 2 replicates x 2 peaks. Peak 0 varies, peak 1 is flat.
func testCube() *npy.Array {
	return &npy.Array{
		Shape: []int{2, 2, 2},
		Data: []float64{
			1, 10, // sample 0, replicate 0
			3, 10, // sample 0, replicate 1
			5, 10, // sample 1, replicate 0
			7, 10, // sample 1, replicate 1
		},
	}
}

func TestCompute(t *testing.T) {
	stats, err := Compute(testCube(), []float64{838.5, 840.2})
	require.NoError(t, err)
	require.Len(t, stats, 2)

	p0 := stats[0]
	assert.Equal(t, 838.5, p0.Mz)
	// Replicate-averaged sample means are 2 and 6.
	assert.Equal(t, 4.0, p0.AverageReplicates)
	assert.Equal(t, 2.0, p0.StddevReplicates)
	assert.Equal(t, 0.5, p0.VariabilityReplicates)
	// Sample-averaged replicate means are 3 and 5.
	assert.Equal(t, 4.0, p0.AverageSamples)
	assert.Equal(t, 1.0, p0.StddevSamples)
	assert.Equal(t, 0.25, p0.VariabilitySamples)

	p1 := stats[1]
	assert.Equal(t, 10.0, p1.AverageSamples)
	assert.Equal(t, 0.0, p1.StddevSamples)
	assert.Equal(t, 0.0, p1.VariabilitySamples)
}

func TestComputeShapeErrors(t *testing.T) {
	_, err := Compute(&npy.Array{Shape: []int{4}, Data: make([]float64, 4)}, []float64{1})
	assert.ErrorIs(t, err, scoring.ErrShapeMismatch)

	_, err = Compute(testCube(), []float64{838.5})
	assert.ErrorIs(t, err, scoring.ErrShapeMismatch)
}

func TestWriteCSV(t *testing.T) {
	stats, err := Compute(testCube(), []float64{838.5, 840.2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, stats))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "m/z;Variability samples;Average samples;Stddev samples;"+
		"Variability replicates;Average replicates;Stddev replicates", lines[0])
	assert.Equal(t, "838.5;0.25;4;1;0.5;4;2", lines[1])
}
