package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/akhenakh/handlemesh/handle"
	"github.com/akhenakh/handlemesh/objfile"
	"github.com/akhenakh/handlemesh/r3"
)

// job describes one handle construction: a mesh, the two selected faces and
// the selected vertices (both in selection order), and the parameters.
type job struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][]int      `json:"faces"`

	SelectedFaces    [2]int `json:"selected_faces"`
	SelectedVertices []int  `json:"selected_vertices"`

	Segments int     `json:"segments"`
	Weight1  float64 `json:"weight1"`
	Weight2  float64 `json:"weight2"`
	Twists   int     `json:"twists"`
}

// overrides carries flag values that replace job fields when set.
type overrides struct {
	segments, twists *int
	weight1, weight2 *float64
}

func (ov overrides) apply(j *job) {
	if ov.segments != nil {
		j.Segments = *ov.segments
	}
	if ov.twists != nil {
		j.Twists = *ov.twists
	}
	if ov.weight1 != nil {
		j.Weight1 = *ov.weight1
	}
	if ov.weight2 != nil {
		j.Weight2 = *ov.weight2
	}
}

func loadJob(path string) (*job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading job: %w", err)
	}
	var j job
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job: %w", err)
	}
	for _, fi := range j.SelectedFaces {
		if fi < 0 || fi >= len(j.Faces) {
			return nil, fmt.Errorf("selected face %d out of range (%d faces)", fi, len(j.Faces))
		}
	}
	if j.SelectedFaces[0] == j.SelectedFaces[1] {
		return nil, fmt.Errorf("selected faces must be distinct, got %d twice", j.SelectedFaces[0])
	}
	return &j, nil
}

func (j *job) mesh() []r3.Vector {
	verts := make([]r3.Vector, len(j.Vertices))
	for i, v := range j.Vertices {
		verts[i] = r3.Vector{X: v[0], Y: v[1], Z: v[2]}
	}
	return verts
}

// buildHandle resolves the job's selection and runs the pipeline.
func buildHandle(j *job) (*handle.Handle, [2][]int, []r3.Vector, error) {
	verts := j.mesh()
	loops := [2][]int{j.Faces[j.SelectedFaces[0]], j.Faces[j.SelectedFaces[1]]}

	src, dst, err := handle.ResolveSelection(verts, loops, j.SelectedVertices)
	if err != nil {
		return nil, loops, verts, err
	}

	h, err := handle.Make(src, dst, handle.Params{
		Segments: j.Segments,
		Weight1:  j.Weight1,
		Weight2:  j.Weight2,
		Twists:   j.Twists,
	})
	return h, loops, verts, err
}

// graft merges the handle into the job's mesh: the two consumed faces are
// dropped, the new interior points appended, and the quads remapped from the
// handle's combined index space to mesh indices.
func graft(verts []r3.Vector, faces [][]int, selected [2]int, loops [2][]int, h *handle.Handle) *objfile.Mesh {
	m := &objfile.Mesh{}
	for _, v := range verts {
		m.AddVertex(v)
	}
	base := len(verts)
	for _, p := range h.Points {
		m.AddVertex(p)
	}

	targetBase := h.Slots * (h.Segments + 1)
	meshIndex := func(idx int) int {
		switch {
		case idx < h.Slots:
			return loops[0][h.SourceSlot[idx]]
		case idx >= targetBase:
			return loops[1][h.TargetSlot[idx-targetBase]]
		default:
			return base + idx - h.Slots
		}
	}

	for fi, face := range faces {
		if fi == selected[0] || fi == selected[1] {
			continue // consumed by the handle
		}
		m.AddFace(append([]int(nil), face...)...)
	}
	for _, q := range h.Faces {
		m.AddFace(meshIndex(q[0]), meshIndex(q[1]), meshIndex(q[2]), meshIndex(q[3]))
	}
	return m
}

func runMake(path, out string, ov overrides) error {
	j, err := loadJob(path)
	if err != nil {
		return err
	}
	ov.apply(j)

	h, loops, verts, err := buildHandle(j)
	if err != nil {
		return err
	}

	m := graft(verts, j.Faces, j.SelectedFaces, loops, h)
	if err := objfile.WriteFile(out, m); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("wrote %s: %d vertices (%d new), %d faces (%d handle quads)\n",
		out, len(m.Vertices), len(h.Points), len(m.Faces), len(h.Faces))
	return nil
}

func runValidate(path string) error {
	j, err := loadJob(path)
	if err != nil {
		return err
	}
	h, _, _, err := buildHandle(j)
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d slots per ring, %d interior rings, %d new points, %d quads\n",
		h.Slots, h.Segments, len(h.Points), len(h.Faces))
	return nil
}

// exampleJob reproduces the demo scene the original interactive operator
// shipped with: a cube whose top face is split into two triangles, with a
// handle connecting the bottom square to one of the triangles around the
// outside of the cube.
func exampleJob() *job {
	return &job{
		Vertices: [][3]float64{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6},    // top, first half
			{4, 6, 7},    // top, second half
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
		SelectedFaces:    [2]int{0, 1},
		SelectedVertices: []int{0, 4},
		Segments:         10,
		Weight1:          6,
		Weight2:          6,
	}
}

func runExample(path string) error {
	data, err := json.MarshalIndent(exampleJob(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s; try: handlemesh make %s -o cube-handle.obj\n", path, path)
	return nil
}
