package handle

// buildFaces stitches every pair of adjacent rings into a band of quads.
// Quad (i) of band (j) is (ring_j[i], ring_j[i+1], ring_j+1[i+1], ring_j+1[i])
// with the column index taken modulo the slot count, closing the tube.
// Slots bunched together by normalization produce zero-area quads here; they
// are emitted like any other so the face count stays Slots*(Segments+1)
// regardless of input vertex counts.
func (h *Handle) buildFaces() {
	bands := h.Segments + 1
	h.Faces = make([][4]int, 0, h.Slots*bands)
	for j := 0; j < bands; j++ {
		for i := 0; i < h.Slots; i++ {
			ni := (i + 1) % h.Slots
			h.Faces = append(h.Faces, [4]int{
				h.vertexIndex(j, i),
				h.vertexIndex(j, ni),
				h.vertexIndex(j+1, ni),
				h.vertexIndex(j+1, i),
			})
		}
	}
}

// vertexIndex maps a (ring, slot) pair into the combined vertex index space
// documented on Handle.
func (h *Handle) vertexIndex(ring, slot int) int { return ring*h.Slots + slot }
