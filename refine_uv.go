package ccsubdiv

import "github.com/polymesh-go/ccsubdiv/internal/parallel"

// RefineVertexUvs builds every derived level's uv values, from the cage
// up through s.MaxDepth(). If this hierarchy has uvs disabled it writes
// nothing and returns ErrNoUvs. UVs are not topological (§4.4): refinement runs per face,
// averaging the ring's corner uvs for the face-point slot and averaging
// adjacent corners for each edge-point slot, writing the four uv values
// attached to each parent halfedge's children in lockstep with
// RefineHalfedges's topological wiring.
func RefineVertexUvs(s *Subd, pool *parallel.WorkerPool) error {
	if !s.uvsEnabled {
		return ErrNoUvs
	}
	for parentLevel := 0; parentLevel < s.maxDepth; parentLevel++ {
		refineVertexUvLevel(s, pool, parentLevel)
	}
	return nil
}

func refineVertexUvLevel(s *Subd, pool *parallel.WorkerPool, parentLevel int) {
	childLevel := parentLevel + 1
	faceCount := s.counts.FaceCountAtDepth(parentLevel)
	childBase := s.BaseHalfedgeOffset(childLevel)

	pool.ForEachIndex(int(faceCount), func(i int) {
		f := int32(i)
		start := FaceToHalfedgeID(s, f, parentLevel)

		faceUv := HalfedgeVertexUv(s, start, parentLevel)
		ringLen := float32(1)
		for h := HalfedgeNextID(s, start, parentLevel); h != start; h = HalfedgeNextID(s, h, parentLevel) {
			faceUv = faceUv.Add(HalfedgeVertexUv(s, h, parentLevel))
			ringLen++
		}
		faceUv = faceUv.Mul(1 / ringLen)

		h := start
		for {
			p := HalfedgePrevID(s, h, parentLevel)
			n := HalfedgeNextID(s, h, parentLevel)
			uvH := HalfedgeVertexUv(s, h, parentLevel)
			uvP := HalfedgeVertexUv(s, p, parentLevel)
			uvN := HalfedgeVertexUv(s, n, parentLevel)

			local := 4 * h
			s.uvs[childBase+local+0] = uvH
			s.uvs[childBase+local+1] = uvH.Lerp(uvN, 0.5)
			s.uvs[childBase+local+2] = faceUv
			s.uvs[childBase+local+3] = uvP.Lerp(uvH, 0.5)

			h = n
			if h == start {
				break
			}
		}
	})
}
