package ccsubdiv

import "fmt"

// BuildCageFromPolygons derives a Cage's halfedge topology from a plain
// face-vertex list, the representation most mesh data (OBJ, a modeling
// tool's export, a procedural generator) is already in. Each entry of
// faces is a face's vertex indices in ring order; faces must be wound
// consistently (a shared edge is traversed in opposite directions by its
// two faces) or the resulting twin assignment will be wrong.
//
// uvs may be nil. If non-nil, faceUvs must have the same shape as faces
// and gives the uv index for each corner.
func BuildCageFromPolygons(faces [][]int32, positions []Vector3, uvs []Vector2, faceUvs [][]int32) (*Cage, error) {
	halfedgeCount := 0
	for _, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("ccsubdiv: face with %d corners", len(f))
		}
		halfedgeCount += len(f)
	}

	halfedges := make([]HalfedgeCage, halfedgeCount)
	faceToHalfedgeFirst := make([]int32, len(faces))
	vertexToHalfedgeFirst := make([]int32, len(positions))
	for i := range vertexToHalfedgeFirst {
		vertexToHalfedgeFirst[i] = -1
	}

	type edgeKey struct{ a, b int32 }
	edgeOf := make(map[edgeKey]int32) // directed (origin, dest) -> halfedge id
	edgeID := make(map[edgeKey]int32) // undirected, sorted -> edge id
	edgeToHalfedgeFirst := make([]int32, 0, halfedgeCount/2+1)

	h := int32(0)
	for fi, f := range faces {
		n := len(f)
		faceToHalfedgeFirst[fi] = h
		base := h
		for k := 0; k < n; k++ {
			origin := f[k]
			dest := f[(k+1)%n]
			halfedges[h].FaceID = int32(fi)
			halfedges[h].VertexID = origin
			halfedges[h].NextID = base + int32((k+1)%n)
			halfedges[h].PrevID = base + int32((k-1+n)%n)
			halfedges[h].TwinID = -1
			if faceUvs != nil {
				halfedges[h].UvID = faceUvs[fi][k]
			}
			if vertexToHalfedgeFirst[origin] < 0 {
				vertexToHalfedgeFirst[origin] = h
			}
			edgeOf[edgeKey{origin, dest}] = h

			a, b := origin, dest
			if a > b {
				a, b = b, a
			}
			uk := edgeKey{a, b}
			if id, ok := edgeID[uk]; ok {
				halfedges[h].EdgeID = id
			} else {
				id := int32(len(edgeToHalfedgeFirst))
				edgeID[uk] = id
				edgeToHalfedgeFirst = append(edgeToHalfedgeFirst, h)
				halfedges[h].EdgeID = id
			}
			h++
		}
	}

	for dk, hid := range edgeOf {
		if twin, ok := edgeOf[edgeKey{dk.b, dk.a}]; ok {
			halfedges[hid].TwinID = twin
		}
	}

	creases := make([]Crease, len(edgeToHalfedgeFirst))
	for i := range creases {
		creases[i] = Crease{NextID: int32(i), PrevID: int32(i), Sharpness: 0}
	}

	return NewCage(halfedges, creases, positions, uvs, vertexToHalfedgeFirst, edgeToHalfedgeFirst, faceToHalfedgeFirst), nil
}
