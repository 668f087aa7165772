package geometry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrMeshFormat marks malformed vertex or face lines.
var ErrMeshFormat = errors.New("malformed mesh line")

// LoadMesh reads a Wavefront-style mesh file.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseMesh(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, err)
	}
	return m, nil
}

// ParseMesh reads "v x y z" and "f a b c ..." lines. Face indices are
// 1-based, negative indices count back from the latest vertex, and
// "a/b/c" index groups use only the vertex index. Polygons are fanned into
// triangles. Every other line is ignored.
func ParseMesh(r io.Reader) (*Mesh, error) {
	var (
		vertices []mgl64.Vec3
		faces    [][3]int
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates: %w", line, ErrMeshFormat)
			}
			var v mgl64.Vec3
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: %v", line, ErrMeshFormat, err)
				}
				v[i] = f
			}
			vertices = append(vertices, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs 3 vertices: %w", line, ErrMeshFormat)
			}
			idx := make([]int, len(fields)-1)
			for i, tok := range fields[1:] {
				n, err := faceIndex(tok, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx[i] = n
			}
			for i := 1; i+1 < len(idx); i++ {
				faces = append(faces, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewMesh(vertices, faces)
}

func faceIndex(tok string, nverts int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMeshFormat, err)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += nverts
	default:
		return 0, fmt.Errorf("%w: vertex index 0", ErrMeshFormat)
	}
	if n < 0 || n >= nverts {
		return 0, fmt.Errorf("%w: vertex index %s undefined", ErrMeshFormat, tok)
	}
	return n, nil
}
