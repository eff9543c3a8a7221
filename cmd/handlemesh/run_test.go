package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExampleJob(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, runExample(path))
	return path
}

func TestLoadJob(t *testing.T) {
	j, err := loadJob(writeExampleJob(t))
	require.NoError(t, err)

	assert.Len(t, j.Vertices, 8)
	assert.Len(t, j.Faces, 7)
	assert.Equal(t, [2]int{0, 1}, j.SelectedFaces)
	assert.Equal(t, 10, j.Segments)
}

func TestLoadJobErrors(t *testing.T) {
	_, err := loadJob(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = loadJob(bad)
	assert.ErrorContains(t, err, "parsing job")

	dup := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`{
		"vertices": [[0,0,0],[1,0,0],[0,1,0]],
		"faces": [[0,1,2]],
		"selected_faces": [0,0],
		"selected_vertices": [0]
	}`), 0o644))
	_, err = loadJob(dup)
	assert.ErrorContains(t, err, "distinct")
}

func TestOverridesApply(t *testing.T) {
	j := exampleJob()
	seg, tw := 3, 2
	w := 1.5
	ov := overrides{segments: &seg, twists: &tw, weight1: &w, weight2: &w}
	ov.apply(j)

	assert.Equal(t, 3, j.Segments)
	assert.Equal(t, 2, j.Twists)
	assert.Equal(t, 1.5, j.Weight1)
	assert.Equal(t, 1.5, j.Weight2)
}

func TestBuildAndGraftExample(t *testing.T) {
	j := exampleJob()
	h, loops, verts, err := buildHandle(j)
	require.NoError(t, err)

	// The bottom square sets the slot count; the split-off triangle bunches.
	assert.Equal(t, 4, h.Slots)
	assert.Len(t, h.Points, 4*j.Segments)
	assert.Len(t, h.Faces, 4*(j.Segments+1))

	m := graft(verts, j.Faces, j.SelectedFaces, loops, h)

	// All original vertices plus the interior points.
	assert.Len(t, m.Vertices, len(j.Vertices)+len(h.Points))
	// The two selected faces are consumed; the handle quads replace them.
	assert.Len(t, m.Faces, len(j.Faces)-2+len(h.Faces))

	// Every face references valid vertices.
	for _, f := range m.Faces {
		for _, idx := range f {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(m.Vertices))
		}
	}
}

func TestGraftEndRingsAliasMeshVertices(t *testing.T) {
	j := exampleJob()
	h, loops, verts, err := buildHandle(j)
	require.NoError(t, err)

	m := graft(verts, j.Faces, j.SelectedFaces, loops, h)

	// The first band of handle quads must reference original mesh vertices
	// for its source-ring corners, not duplicated positions.
	firstQuad := m.Faces[len(j.Faces)-2]
	for _, corner := range firstQuad[:2] {
		assert.Less(t, corner, len(verts), "source ring corner should alias an original vertex")
	}
}

func TestRunMakeWritesOBJ(t *testing.T) {
	job := writeExampleJob(t)
	out := filepath.Join(t.TempDir(), "handle.obj")
	require.NoError(t, runMake(job, out, overrides{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)

	assert.Equal(t, 8+4*10, strings.Count(text, "\nv ")+1, "vertex line count")
	assert.Equal(t, 5+4*11, strings.Count(text, "f "), "face line count")
	assert.True(t, strings.HasPrefix(text, "v "))
}

func TestRunValidate(t *testing.T) {
	require.NoError(t, runValidate(writeExampleJob(t)))
}
