package npy

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var npyMagic = []byte("\x93NUMPY")

// Header fields are stored as a Python dict literal, e.g.
// {'descr': '<f8', 'fortran_order': False, 'shape': (42, 2, 128), }
var (
	reDescr   = regexp.MustCompile(`'descr'\s*:\s*'([^']+)'`)
	reFortran = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	reShape   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// ReadFile reads a .npy file from disk.
func ReadFile(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Read reads a .npy array from an io.Reader.
func Read(r io.Reader) (*Array, error) {
	descr, fortran, shape, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if fortran {
		return nil, ErrFortranOrder
	}

	n := 1
	for _, d := range shape {
		n *= d
	}

	itemSize, err := dtypeSize(descr)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, n*itemSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}

	a := &Array{Shape: shape, Data: make([]float64, n)}
	for i := 0; i < n; i++ {
		a.Data[i] = decodeElem(descr, raw[i*itemSize:])
	}
	return a, nil
}

func readHeader(r io.Reader) (descr string, fortran bool, shape []int, err error) {
	pre := make([]byte, 8)
	if _, err = io.ReadFull(r, pre); err != nil {
		return
	}
	if string(pre[:6]) != string(npyMagic) {
		err = ErrBadMagic
		return
	}
	major := pre[6]

	var headerLen int
	switch major {
	case 1:
		var lenBuf [2]byte
		if _, err = io.ReadFull(r, lenBuf[:]); err != nil {
			return
		}
		headerLen = int(binary.LittleEndian.Uint16(lenBuf[:]))
	default:
		// Version 2 and 3 use a 32 bit header length.
		var lenBuf [4]byte
		if _, err = io.ReadFull(r, lenBuf[:]); err != nil {
			return
		}
		headerLen = int(binary.LittleEndian.Uint32(lenBuf[:]))
	}

	header := make([]byte, headerLen)
	if _, err = io.ReadFull(r, header); err != nil {
		return
	}

	m := reDescr.FindSubmatch(header)
	if m == nil {
		err = ErrBadHeader
		return
	}
	descr = string(m[1])

	m = reFortran.FindSubmatch(header)
	if m == nil {
		err = ErrBadHeader
		return
	}
	fortran = string(m[1]) == "True"

	m = reShape.FindSubmatch(header)
	if m == nil {
		err = ErrBadHeader
		return
	}
	for _, field := range strings.Split(string(m[1]), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var d int
		d, err = strconv.Atoi(field)
		if err != nil {
			err = ErrBadHeader
			return
		}
		shape = append(shape, d)
	}
	// A scalar has shape (), which we treat as a single-element vector.
	if len(shape) == 0 {
		shape = []int{1}
	}
	return
}

func dtypeSize(descr string) (int, error) {
	switch descr {
	case "<f8", "<i8":
		return 8, nil
	case "<f4", "<i4":
		return 4, nil
	case "|u1", "|i1":
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedDtype, descr)
}

func decodeElem(descr string, b []byte) float64 {
	switch descr {
	case "<f8":
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	case "<f4":
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case "<i8":
		return float64(int64(binary.LittleEndian.Uint64(b)))
	case "<i4":
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case "|u1":
		return float64(b[0])
	case "|i1":
		return float64(int8(b[0]))
	}
	return 0
}
