package ccsubdiv

import "github.com/polymesh-go/ccsubdiv/internal/parallel"

// This file implements the gather form of every vertex-point kernel
// (§4.5): one loop iteration per output point, reading whatever it needs from
// the level below and the new face/edge points just written this pass.
// No synchronization is required because each output slot is touched by
// exactly one call.

func (s *Subd) facePointSlot(childLevel int, v0, f int32) int32 {
	return s.BaseVertexOffset(childLevel) + v0 + f
}

func (s *Subd) edgePointSlot(childLevel int, v0, f0, e int32) int32 {
	return s.BaseVertexOffset(childLevel) + v0 + f0 + e
}

func (s *Subd) carriedVertexSlot(childLevel int, v int32) int32 {
	return s.BaseVertexOffset(childLevel) + v
}

// facePointGather computes the face-point of face f at level l by
// averaging its ring's corner positions. The walk is the same whether
// the ring is an arbitrary cage polygon or a level >= 1 quad.
func facePointGather(s *Subd, f int32, l int) Vector3 {
	start := FaceToHalfedgeID(s, f, l)
	sum := HalfedgeVertexPoint(s, start, l)
	n := float32(1)
	for h := HalfedgeNextID(s, start, l); h != start; h = HalfedgeNextID(s, h, l) {
		sum = sum.Add(HalfedgeVertexPoint(s, h, l))
		n++
	}
	return sum.Mul(1 / n)
}

// edgePointGather computes the edge-point of edge e at level l. Boundary
// edges (no twin) always resolve to the exact midpoint. When creased is
// true the result is pulled toward that midpoint by the edge's sharpness.
func edgePointGather(s *Subd, e int32, l int, creased bool) Vector3 {
	h := EdgeToHalfedgeID(s, e, l)
	t := HalfedgeTwinID(s, h, l)
	n := HalfedgeNextID(s, h, l)
	a := HalfedgeVertexPoint(s, h, l)
	b := HalfedgeVertexPoint(s, n, l)
	sharp := a.Add(b).Mul(0.5)

	if t < 0 {
		return sharp
	}

	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	f1 := s.VertexPoint(s.facePointSlot(childLevel, v0, HalfedgeFaceID(s, h, l)))
	f2 := s.VertexPoint(s.facePointSlot(childLevel, v0, HalfedgeFaceID(s, t, l)))
	smooth := a.Add(b).Add(f1).Add(f2).Mul(0.25)

	if !creased {
		return smooth
	}
	return smooth.Lerp(sharp, saturate(creaseSharpness(s, e, l)))
}

// vertexPointUncreasedGather computes the updated position of carried
// vertex v at level l, smooth-averaging its new face- and edge-points.
// A vertex whose one-ring does not close (a mesh boundary) is held fixed.
func vertexPointUncreasedGather(s *Subd, v int32, l int) Vector3 {
	oldPos := s.VertexPoint(s.carriedVertexSlot(l, v))
	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	f0 := s.counts.FaceCountAtDepth(l)

	h0 := VertexPointToHalfedgeID(s, v, l)
	var faceSum, edgeSum Vector3
	var n float32

	h := h0
	for {
		faceSum = faceSum.Add(s.VertexPoint(s.facePointSlot(childLevel, v0, HalfedgeFaceID(s, h, l))))
		edgeSum = edgeSum.Add(s.VertexPoint(s.edgePointSlot(childLevel, v0, f0, HalfedgeEdgeID(s, h, l))))
		n++

		next := NextVertexHalfedgeID(s, h, l)
		if next < 0 {
			return oldPos
		}
		h = next
		if h == h0 {
			break
		}
	}

	fBar := faceSum.Mul(1 / n)
	eBar := edgeSum.Mul(1 / n)
	return eBar.Mul(4).Sub(fBar).Add(oldPos.Mul(n - 3)).Mul(1 / n)
}

// vertexPointCreasedGather computes the DeRose semi-sharp update of
// carried vertex v at level l. It walks the same one-ring as the
// uncreased rule, additionally accumulating incident sharpness, then
// selects among the smooth, corner, and regular-crease cases.
func vertexPointCreasedGather(s *Subd, v int32, l int) Vector3 {
	oldPos := s.VertexPoint(s.carriedVertexSlot(l, v))
	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	f0 := s.counts.FaceCountAtDepth(l)

	h0 := VertexPointToHalfedgeID(s, v, l)
	var faceSum, edgeSum, weightedEdgeSum Vector3
	var n, avgS, creaseCount float32

	h := h0
	for {
		edgePoint := s.VertexPoint(s.edgePointSlot(childLevel, v0, f0, HalfedgeEdgeID(s, h, l)))
		faceSum = faceSum.Add(s.VertexPoint(s.facePointSlot(childLevel, v0, HalfedgeFaceID(s, h, l))))
		edgeSum = edgeSum.Add(edgePoint)

		sharp := HalfedgeSharpness(s, h, l)
		weight := signf(sharp)
		weightedEdgeSum = weightedEdgeSum.Add(edgePoint.Mul(weight))
		avgS += sharp
		creaseCount += weight
		n++

		next := NextVertexHalfedgeID(s, h, l)
		if next < 0 {
			return oldPos
		}
		h = next
		if h == h0 {
			break
		}
	}

	switch {
	case creaseCount <= 1:
		fBar := faceSum.Mul(1 / n)
		eBar := edgeSum.Mul(1 / n)
		return eBar.Mul(4).Sub(fBar).Add(oldPos.Mul(n - 3)).Mul(1 / n)
	case creaseCount >= 3 || n == 2:
		return oldPos
	default:
		creasePoint := oldPos.Mul(0.5).Add(weightedEdgeSum.Mul(1 / (creaseCount * 2)))
		return oldPos.Lerp(creasePoint, saturate(avgS/2))
	}
}

// RefineFacePoints_Gather writes level l's faces' face-points into the
// child level's vertex-point block.
func RefineFacePoints_Gather(s *Subd, pool *parallel.WorkerPool, l int) {
	faceCount := s.counts.FaceCountAtDepth(l)
	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	pool.ForEachIndex(int(faceCount), func(i int) {
		f := int32(i)
		s.SetVertexPoint(s.facePointSlot(childLevel, v0, f), facePointGather(s, f, l))
	})
}

// RefineEdgePoints_Gather writes level l's edges' edge-points, reading
// the face-points RefineFacePoints_Gather just wrote for this same step.
func RefineEdgePoints_Gather(s *Subd, pool *parallel.WorkerPool, l int, creased bool) {
	edgeCount := s.counts.EdgeCountAtDepth(l)
	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	f0 := s.counts.FaceCountAtDepth(l)
	pool.ForEachIndex(int(edgeCount), func(i int) {
		e := int32(i)
		s.SetVertexPoint(s.edgePointSlot(childLevel, v0, f0, e), edgePointGather(s, e, l, creased))
	})
}

// RefineVertexPoints_Gather writes level l's carried-vertex updates,
// reading the face- and edge-points already written this step.
func RefineVertexPoints_Gather(s *Subd, pool *parallel.WorkerPool, l int, creased bool) {
	vertexCount := s.counts.VertexCountAtDepth(l)
	childLevel := l + 1
	pool.ForEachIndex(int(vertexCount), func(i int) {
		v := int32(i)
		var p Vector3
		if creased {
			p = vertexPointCreasedGather(s, v, l)
		} else {
			p = vertexPointUncreasedGather(s, v, l)
		}
		s.SetVertexPoint(s.carriedVertexSlot(childLevel, v), p)
	})
}
