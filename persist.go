package aabb

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Persistent format (spec.md §6): a 16-byte header, then the four root
// MBR coordinates, then the raw packed buffer (inner-node and leaf MBR
// arrays by level, then the id permutation). Everything is little-endian.
const (
	magicBytes      = "AABB"
	formatVersion   = 1
	coordTagFloat64 = 0
	coordTagInt32   = 1
	headerSize      = 16
)

func coordTag[T Number]() byte {
	var z T
	switch any(z).(type) {
	case float64:
		return coordTagFloat64
	case int32:
		return coordTagInt32
	default:
		panic("aabb: unsupported coordinate type")
	}
}

func writeCoord[T Number](w io.Writer, v T) error {
	switch x := any(v).(type) {
	case float64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		_, err := w.Write(buf[:])
		return err
	case int32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(x))
		_, err := w.Write(buf[:])
		return err
	default:
		return fmt.Errorf("aabb: unsupported coordinate type")
	}
}

func readCoord[T Number](r io.Reader) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return zero, err
		}
		f := math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
		return any(f).(T), nil
	case int32:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return zero, err
		}
		i := int32(binary.LittleEndian.Uint32(buf[:]))
		return any(i).(T), nil
	default:
		return zero, fmt.Errorf("aabb: unsupported coordinate type")
	}
}

func writeBox[T Number](w io.Writer, b Box[T]) error {
	for _, c := range [4]T{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if err := writeCoord(w, c); err != nil {
			return err
		}
	}
	return nil
}

func readBox[T Number](r io.Reader) (Box[T], error) {
	var b Box[T]
	var err error
	if b.MinX, err = readCoord[T](r); err != nil {
		return b, err
	}
	if b.MinY, err = readCoord[T](r); err != nil {
		return b, err
	}
	if b.MaxX, err = readCoord[T](r); err != nil {
		return b, err
	}
	if b.MaxY, err = readCoord[T](r); err != nil {
		return b, err
	}
	return b, nil
}

func (idx *Index[T]) rootBox() Box[T] {
	if idx.numItems == 0 {
		return invertedBox[T]()
	}
	return idx.boxes[idx.levelStart(idx.topLevel())]
}

// Save serializes the built index to path.
func (idx *Index[T]) Save(path string) error {
	idx.requireBuilt()

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)

	header := make([]byte, headerSize)
	copy(header[0:4], magicBytes)
	header[4] = formatVersion
	header[5] = coordTag[T]()
	header[6] = byte(idx.NodeSize)
	header[7] = 0
	binary.LittleEndian.PutUint64(header[8:16], uint64(idx.numItems))

	if _, err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := writeBox(w, idx.rootBox()); err != nil {
		f.Close()
		return err
	}
	for _, b := range idx.boxes {
		if err := writeBox(w, b); err != nil {
			f.Close()
			return err
		}
	}
	var idBuf [4]byte
	for _, id := range idx.permutation {
		binary.LittleEndian.PutUint32(idBuf[:], id)
		if _, err := w.Write(idBuf[:]); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a float64-coordinate index previously written by Save.
func Load(path string) (*Index[float64], error) {
	return loadIndex[float64](path)
}

// LoadInt32 reads an int32-coordinate index previously written by Save.
func LoadInt32(path string) (*Index[int32], error) {
	return loadIndex[int32](path)
}

func loadIndex[T Number](path string) (*Index[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if string(header[0:4]) != magicBytes {
		return nil, fmt.Errorf("%w: bad magic", ErrFormat)
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, header[4])
	}
	if header[5] != coordTag[T]() {
		return nil, fmt.Errorf("%w: coordinate type tag mismatch", ErrFormat)
	}
	nodeSize := int(header[6])
	n := int(binary.LittleEndian.Uint64(header[8:16]))

	idx := &Index[T]{NodeSize: nodeSize, built: true, numItems: n}

	root, err := readBox[T](r)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header: %v", ErrFormat, err)
	}
	idx.bounds = root

	if n == 0 {
		idx.levelBounds = []int{0}
		return idx, nil
	}

	idx.levelBounds = computeLevelBounds(n, nodeSize)
	total := idx.levelBounds[len(idx.levelBounds)-1]
	idx.boxes = make([]Box[T], total)
	for i := range idx.boxes {
		b, err := readBox[T](r)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated buffer: %v", ErrFormat, err)
		}
		idx.boxes[i] = b
	}

	idx.permutation = make([]uint32, n)
	idx.posOf = make([]uint32, n)
	var idBuf [4]byte
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated permutation: %v", ErrFormat, err)
		}
		id := binary.LittleEndian.Uint32(idBuf[:])
		idx.permutation[i] = id
		idx.posOf[id] = uint32(i)
	}
	return idx, nil
}
