package ccsubdiv

import "github.com/polymesh-go/ccsubdiv/internal/parallel"

// RefineHalfedges builds every derived level's halfedge records, from the
// cage (level 0) up through s.MaxDepth(). It is embarrassingly parallel
// per level (§4.2): each parent halfedge's four children are independent
// of every other parent's, so levels are refined one at a time with a
// barrier between them, and a level's own refinement runs across a pool.
func RefineHalfedges(s *Subd, pool *parallel.WorkerPool) {
	for parentLevel := 0; parentLevel < s.maxDepth; parentLevel++ {
		refineHalfedgeLevel(s, pool, parentLevel)
	}
}

// refineHalfedgeLevel refines parentLevel into parentLevel+1. The wiring
// is identical whether the parent is the cage (arbitrary face rings) or a
// semi-regular level (quads): every dependency goes through the unified
// accessors in halfedge_access.go, which already dispatch on level.
func refineHalfedgeLevel(s *Subd, pool *parallel.WorkerPool, parentLevel int) {
	childLevel := parentLevel + 1
	parentHalfedgeCount := s.counts.HalfedgeCountAtDepth(parentLevel)
	childBase := s.BaseHalfedgeOffset(childLevel)

	V0 := s.counts.VertexCountAtDepth(parentLevel)
	F0 := s.counts.FaceCountAtDepth(parentLevel)
	E0 := s.counts.EdgeCountAtDepth(parentLevel)

	pool.ForEachIndex(int(parentHalfedgeCount), func(i int) {
		h := int32(i)
		t := HalfedgeTwinID(s, h, parentLevel)
		n := HalfedgeNextID(s, h, parentLevel)
		p := HalfedgePrevID(s, h, parentLevel)
		e := HalfedgeEdgeID(s, h, parentLevel)
		ep := HalfedgeEdgeID(s, p, parentLevel)
		face := HalfedgeFaceID(s, h, parentLevel)
		vertex := HalfedgeVertexID(s, h, parentLevel)

		var pt int32 = -1
		if p >= 0 {
			pt = HalfedgeTwinID(s, p, parentLevel)
		}

		c0TwinID, c3TwinID := int32(-1), int32(-1)
		if t >= 0 {
			tn := HalfedgeNextID(s, t, parentLevel)
			c0TwinID = 4*tn + 3
		}
		if pt >= 0 {
			c3TwinID = 4*pt + 0
		}

		c0EdgeParity := int32(1)
		if t < 0 || h > t {
			c0EdgeParity = 0
		}
		c3EdgeParity := int32(0)
		if pt < 0 || p > pt {
			c3EdgeParity = 1
		}

		local := 4 * h
		s.writeChildHalfedge(childLevel, local+0, c0TwinID, 2*e+c0EdgeParity, vertex)
		s.writeChildHalfedge(childLevel, local+1, 4*n+2, 2*E0+h, V0+F0+e)
		s.writeChildHalfedge(childLevel, local+2, 4*p+1, 2*E0+p, V0+face)
		s.writeChildHalfedge(childLevel, local+3, c3TwinID, 2*ep+c3EdgeParity, V0+F0+ep)

		for k := int32(0); k < 4; k++ {
			global := childBase + local + k
			s.halfedgeUvID[global] = global
		}
	})
}

func (s *Subd) writeChildHalfedge(level int, local int32, twinID, edgeID, vertexID int32) {
	global := s.BaseHalfedgeOffset(level) + local
	s.halfedgeTwinID[global] = twinID
	s.halfedgeEdgeID[global] = edgeID
	s.halfedgeVertexID[global] = vertexID
}
