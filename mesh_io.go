package ccsubdiv

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// containerMagic is the fixed 8-byte header tag every container starts
// with, per §6.
var containerMagic = [8]byte{'c', 'c', '_', 'M', 'e', 's', 'h', '1'}

type containerHeader struct {
	VertexCount   int32
	UvCount       int32
	HalfedgeCount int32
	EdgeCount     int32
	FaceCount     int32
}

// Save writes cage to path in the fixed little-endian container format.
// On any I/O error the partially written file is closed and removed so
// no truncated container is left behind.
func Save(cage *Cage, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ccsubdiv: create %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := SaveTo(w, cage); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("ccsubdiv: flush %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("ccsubdiv: close %q: %w", path, err)
	}
	Logger().Info("cage saved", zap.String("path", path), zap.Int("faceCount", cage.FaceCount()))
	return nil
}

// SaveTo writes cage to w in the fixed container format, without
// touching the filesystem; Save is a thin wrapper around it.
func SaveTo(w io.Writer, cage *Cage) error {
	header := containerHeader{
		VertexCount:   int32(cage.VertexCount()),
		UvCount:       int32(cage.UvCount()),
		HalfedgeCount: int32(cage.HalfedgeCount()),
		EdgeCount:     int32(cage.EdgeCount()),
		FaceCount:     int32(cage.FaceCount()),
	}

	if _, err := w.Write(containerMagic[:]); err != nil {
		return fmt.Errorf("ccsubdiv: write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("ccsubdiv: write header: %w", err)
	}

	if err := writeInt32Slice(w, cage.vertexToHalfedgeFirst); err != nil {
		return err
	}
	if err := writeInt32Slice(w, cage.edgeToHalfedgeFirst); err != nil {
		return err
	}
	if err := writeInt32Slice(w, cage.faceToHalfedgeFirst); err != nil {
		return err
	}
	for _, p := range cage.vertexPoints {
		if err := binary.Write(w, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("ccsubdiv: write vertex point: %w", err)
		}
	}
	for _, uv := range cage.uvs {
		if err := binary.Write(w, binary.LittleEndian, uv); err != nil {
			return fmt.Errorf("ccsubdiv: write uv: %w", err)
		}
	}
	for _, cr := range cage.creases {
		if err := binary.Write(w, binary.LittleEndian, cr); err != nil {
			return fmt.Errorf("ccsubdiv: write crease: %w", err)
		}
	}
	for _, he := range cage.halfedges {
		if err := binary.Write(w, binary.LittleEndian, he); err != nil {
			return fmt.Errorf("ccsubdiv: write halfedge: %w", err)
		}
	}
	return nil
}

func writeInt32Slice(w io.Writer, s []int32) error {
	if err := binary.Write(w, binary.LittleEndian, s); err != nil {
		return fmt.Errorf("ccsubdiv: write index array: %w", err)
	}
	return nil
}

// Load reads a cage from path. It returns ErrBadMagic if the file does
// not start with the expected tag.
func Load(path string) (*Cage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ccsubdiv: open %q: %w", path, err)
	}
	defer f.Close()

	cage, err := LoadFrom(bufio.NewReader(f))
	if err != nil {
		Logger().Warn("cage load failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("ccsubdiv: load %q: %w", path, err)
	}
	Logger().Info("cage loaded", zap.String("path", path), zap.Int("faceCount", cage.FaceCount()))
	return cage, nil
}

// LoadFrom reads a cage from r, without touching the filesystem; Load is
// a thin wrapper around it.
func LoadFrom(r io.Reader) (*Cage, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if magic != containerMagic {
		return nil, ErrBadMagic
	}

	var header containerHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrShortRead, err)
	}

	vertexToHalfedge, err := readInt32Slice(r, header.VertexCount)
	if err != nil {
		return nil, err
	}
	edgeToHalfedge, err := readInt32Slice(r, header.EdgeCount)
	if err != nil {
		return nil, err
	}
	faceToHalfedge, err := readInt32Slice(r, header.FaceCount)
	if err != nil {
		return nil, err
	}

	vertexPoints := make([]Vector3, header.VertexCount)
	for i := range vertexPoints {
		if err := binary.Read(r, binary.LittleEndian, &vertexPoints[i]); err != nil {
			return nil, fmt.Errorf("%w: vertex point %d: %v", ErrShortRead, i, err)
		}
	}

	uvs := make([]Vector2, header.UvCount)
	for i := range uvs {
		if err := binary.Read(r, binary.LittleEndian, &uvs[i]); err != nil {
			return nil, fmt.Errorf("%w: uv %d: %v", ErrShortRead, i, err)
		}
	}

	creases := make([]Crease, header.EdgeCount)
	for i := range creases {
		if err := binary.Read(r, binary.LittleEndian, &creases[i]); err != nil {
			return nil, fmt.Errorf("%w: crease %d: %v", ErrShortRead, i, err)
		}
	}

	halfedges := make([]HalfedgeCage, header.HalfedgeCount)
	for i := range halfedges {
		if err := binary.Read(r, binary.LittleEndian, &halfedges[i]); err != nil {
			return nil, fmt.Errorf("%w: halfedge %d: %v", ErrShortRead, i, err)
		}
	}

	return NewCage(halfedges, creases, vertexPoints, uvs, vertexToHalfedge, edgeToHalfedge, faceToHalfedge), nil
}

func readInt32Slice(r io.Reader, n int32) ([]int32, error) {
	s := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, fmt.Errorf("%w: index array: %v", ErrShortRead, err)
	}
	return s, nil
}
