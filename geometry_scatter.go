package ccsubdiv

import (
	"github.com/polymesh-go/ccsubdiv/internal/atomicfloat"
	"github.com/polymesh-go/ccsubdiv/internal/parallel"
)

// This file implements the scatter form of every vertex-point kernel
// (§4.5): one loop iteration per halfedge, each computing its fractional
// share of an output point and atomically adding it in. Most output
// slots receive contributions from more than one halfedge, so writes go
// through atomicfloat.AddVector3 and the destination array must already
// be zeroed (Subd.ClearVertexPoints).
//
// Each halfedge's share is that halfedge's output point (computed with
// the exact gather formula) divided by the number of halfedges that
// contribute to it — the face's ring length, an edge's one-or-two
// incident halfedges, or a vertex's valence. Summed back up this
// reproduces the gather result up to float32 rounding of the shares.

func faceRingLength(s *Subd, f int32, l int) float32 {
	start := FaceToHalfedgeID(s, f, l)
	n := float32(1)
	for h := HalfedgeNextID(s, start, l); h != start; h = HalfedgeNextID(s, h, l) {
		n++
	}
	return n
}

func vertexValence(s *Subd, v int32, l int) (n float32, boundary bool) {
	h0 := VertexPointToHalfedgeID(s, v, l)
	h := h0
	n = 0
	for {
		n++
		next := NextVertexHalfedgeID(s, h, l)
		if next < 0 {
			return n, true
		}
		h = next
		if h == h0 {
			return n, false
		}
	}
}

func addVertexPointShare(s *Subd, slot int32, contribution Vector3) {
	p := &s.vertexPoints[slot]
	atomicfloat.AddVector3(&p.X, &p.Y, &p.Z, contribution.X, contribution.Y, contribution.Z)
}

// RefineFacePoints_Scatter is the scatter dual of RefineFacePoints_Gather.
func RefineFacePoints_Scatter(s *Subd, pool *parallel.WorkerPool, l int) {
	halfedgeCount := s.counts.HalfedgeCountAtDepth(l)
	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	pool.ForEachIndex(int(halfedgeCount), func(i int) {
		h := int32(i)
		f := HalfedgeFaceID(s, h, l)
		n := faceRingLength(s, f, l)
		share := facePointGather(s, f, l).Mul(1 / n)
		addVertexPointShare(s, s.facePointSlot(childLevel, v0, f), share)
	})
}

// RefineEdgePoints_Scatter is the scatter dual of RefineEdgePoints_Gather.
// It must run after RefineFacePoints_Scatter's barrier, since the edge
// rule reads the child level's face-points.
func RefineEdgePoints_Scatter(s *Subd, pool *parallel.WorkerPool, l int, creased bool) {
	halfedgeCount := s.counts.HalfedgeCountAtDepth(l)
	childLevel := l + 1
	v0 := s.counts.VertexCountAtDepth(l)
	f0 := s.counts.FaceCountAtDepth(l)
	pool.ForEachIndex(int(halfedgeCount), func(i int) {
		h := int32(i)
		e := HalfedgeEdgeID(s, h, l)
		multiplicity := float32(2)
		if HalfedgeTwinID(s, h, l) < 0 {
			multiplicity = 1
		}
		share := edgePointGather(s, e, l, creased).Mul(1 / multiplicity)
		addVertexPointShare(s, s.edgePointSlot(childLevel, v0, f0, e), share)
	})
}

// RefineVertexPoints_Scatter is the scatter dual of RefineVertexPoints_Gather.
// It must run after RefineEdgePoints_Scatter's barrier.
func RefineVertexPoints_Scatter(s *Subd, pool *parallel.WorkerPool, l int, creased bool) {
	halfedgeCount := s.counts.HalfedgeCountAtDepth(l)
	childLevel := l + 1
	pool.ForEachIndex(int(halfedgeCount), func(i int) {
		h := int32(i)
		v := HalfedgeVertexID(s, h, l)
		n, boundary := vertexValence(s, v, l)
		slot := s.carriedVertexSlot(childLevel, v)
		if boundary {
			// Every one of the valence incident halfedges would
			// independently resolve the boundary-fixed value; only
			// one of them may deposit it to avoid double counting.
			if h == VertexPointToHalfedgeID(s, v, l) {
				addVertexPointShare(s, slot, s.VertexPoint(s.carriedVertexSlot(l, v)))
			}
			return
		}
		var p Vector3
		if creased {
			p = vertexPointCreasedGather(s, v, l)
		} else {
			p = vertexPointUncreasedGather(s, v, l)
		}
		addVertexPointShare(s, slot, p.Mul(1/n))
	})
}
