package npy

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	in := &Array{
		Shape: []int{2, 3},
		Data:  []float64{1, 2.5, -3, 4, 0, 6e9},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	// Data must start at a 64 byte boundary.
	assert.Equal(t, 0, (buf.Len()-8*len(in.Data))%64)

	out, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Shape, out.Shape)
	assert.Equal(t, in.Data, out.Data)
}

func TestWriteReadVector(t *testing.T) {
	in := &Array{Shape: []int{3}, Data: []float64{7, 8, 9}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	out, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out.Shape)
	assert.Equal(t, in.Data, out.Data)
}

// buildNpy assembles a version 1.0 file with the given header dict and raw
// data section.
func buildNpy(header string, data []byte) []byte {
	var buf bytes.Buffer
	buf.Write(npyMagic)
	buf.Write([]byte{1, 0})
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(header)))
	buf.Write(lenBuf[:])
	buf.WriteString(header)
	buf.Write(data)
	return buf.Bytes()
}

func TestReadInt32(t *testing.T) {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:], uint32(1))
	binary.LittleEndian.PutUint32(data[4:], uint32(0xFFFFFFFE)) // -2
	binary.LittleEndian.PutUint32(data[8:], uint32(7))

	raw := buildNpy("{'descr': '<i4', 'fortran_order': False, 'shape': (3,), }\n", data)
	a, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, a.Shape)
	assert.Equal(t, []int{1, -2, 7}, a.Ints())
}

func TestReadUint8(t *testing.T) {
	raw := buildNpy("{'descr': '|u1', 'fortran_order': False, 'shape': (2, 2), }\n",
		[]byte{0, 1, 254, 255})
	a, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, a.Shape)
	assert.Equal(t, []float64{0, 1, 254, 255}, a.Data)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not an npy file")))
	assert.ErrorIs(t, err, ErrBadMagic)

	raw := buildNpy("{'descr': '<f8', 'fortran_order': True, 'shape': (1,), }\n",
		make([]byte, 8))
	_, err = Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrFortranOrder)

	raw = buildNpy("{'descr': '<c16', 'fortran_order': False, 'shape': (1,), }\n",
		make([]byte, 16))
	_, err = Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrUnsupportedDtype)

	raw = buildNpy("garbage", nil)
	_, err = Read(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestArrayAt(t *testing.T) {
	a := &Array{Shape: []int{2, 2, 2}, Data: []float64{0, 1, 2, 3, 4, 5, 6, 7}}
	assert.Equal(t, 0.0, a.At(0, 0, 0))
	assert.Equal(t, 3.0, a.At(0, 1, 1))
	assert.Equal(t, 6.0, a.At(1, 1, 0))
}

func TestReadScalar(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, 0x4059000000000000) // 100.0
	raw := buildNpy("{'descr': '<f8', 'fortran_order': False, 'shape': (), }\n", data)
	a, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, a.Shape)
	assert.Equal(t, []float64{100}, a.Data)
}
