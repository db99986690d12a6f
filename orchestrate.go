package ccsubdiv

// This file wires the individual refinement stages into the four public
// entry points of §4.6. All four share the same topology/crease/uv
// prelude; they differ only in whether geometry is computed gather- or
// scatter-style, and whether semi-sharp creases are honored at all.

// Refine_Gather runs the full creased pipeline using gather-form geometry
// kernels.
func Refine_Gather(s *Subd) {
	refinePrelude(s)
	refineGeometry(s, false, true)
}

// Refine_Scatter runs the full creased pipeline using scatter-form
// geometry kernels.
func Refine_Scatter(s *Subd) {
	refinePrelude(s)
	s.ClearVertexPoints()
	refineGeometry(s, true, true)
}

// Refine_NoCreases_Gather runs the full pipeline using gather-form
// geometry kernels, ignoring crease sharpness entirely.
func Refine_NoCreases_Gather(s *Subd) {
	refinePrelude(s)
	refineGeometry(s, false, false)
}

// Refine_NoCreases_Scatter runs the full pipeline using scatter-form
// geometry kernels, ignoring crease sharpness entirely.
func Refine_NoCreases_Scatter(s *Subd) {
	refinePrelude(s)
	s.ClearVertexPoints()
	refineGeometry(s, true, false)
}

// refinePrelude builds topology, creases, and uvs across every level.
// This part of the pipeline is identical regardless of geometry mode.
func refinePrelude(s *Subd) {
	RefineHalfedges(s, s.pool)
	RefineCreases(s, s.pool)
	if s.uvsEnabled {
		_ = RefineVertexUvs(s, s.pool)
	}
}

// refineGeometry runs the per-level face/edge/vertex point kernels in
// the order §4.5 requires: face points first (edge points read them),
// then edge points (vertex points read both).
func refineGeometry(s *Subd, scatter, creased bool) {
	for l := 0; l < s.maxDepth; l++ {
		if scatter {
			RefineFacePoints_Scatter(s, s.pool, l)
			RefineEdgePoints_Scatter(s, s.pool, l, creased)
			RefineVertexPoints_Scatter(s, s.pool, l, creased)
		} else {
			RefineFacePoints_Gather(s, s.pool, l)
			RefineEdgePoints_Gather(s, s.pool, l, creased)
			RefineVertexPoints_Gather(s, s.pool, l, creased)
		}
	}
}
