// Package objfile writes polygon meshes as Wavefront OBJ, the simplest
// format every mesh viewer understands. Only geometry is emitted: no
// normals, no texture coordinates, no materials.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akhenakh/handlemesh/r3"
)

// Mesh is a flat vertex/face soup. Face entries index into Vertices,
// 0-based; Write converts to OBJ's 1-based indexing.
type Mesh struct {
	Vertices []r3.Vector
	Faces    [][]int
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v r3.Vector) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face given its vertex indices.
func (m *Mesh) AddFace(indices ...int) {
	m.Faces = append(m.Faces, indices)
}

// Write emits m as Wavefront OBJ.
func Write(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for fi, face := range m.Faces {
		if len(face) < 3 {
			return fmt.Errorf("face %d has %d vertices, need at least 3", fi, len(face))
		}
		bw.WriteString("f")
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d", fi, idx, len(m.Vertices))
			}
			fmt.Fprintf(bw, " %d", idx+1)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes m as OBJ to the named file.
func WriteFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
