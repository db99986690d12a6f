package ccsubdiv

// Counts gives the per-level element counts of a subdivision hierarchy
// rooted at a cage with H0 halfedges, F0 faces, E0 edges and V0 vertices.
// Level 0 is the cage itself; levels 1..maxDepth are uniformly-refined
// all-quad levels, each derived from the one below it.
//
// Level 1 is special: F1 = H0 (the cage halfedges become the level-1
// faces one-for-one), since an arbitrary-valence cage face splits into
// as many quads as it has corners. From level 1 onward every face is a
// quad, so HalfedgeCountAtDepth(level+1) always equals 4x the face count,
// which in turn equals the halfedge count of the level below.
type Counts struct {
	H0, F0, E0, V0 int32
}

// NewCounts derives the Counts header from a cage.
func NewCounts(c *Cage) Counts {
	return Counts{
		H0: int32(c.HalfedgeCount()),
		F0: int32(c.FaceCount()),
		E0: int32(c.EdgeCount()),
		V0: int32(c.VertexCount()),
	}
}

// HalfedgeCountAtDepth returns H_depth. H_0 is the cage's own halfedge
// count; every derived level has exactly 4x as many halfedges as the one
// below it, since each parent halfedge spawns 4 child halfedges.
func (k Counts) HalfedgeCountAtDepth(depth int) int32 {
	h := k.H0
	for i := 0; i < depth; i++ {
		h *= 4
	}
	return h
}

// FaceCountAtDepth returns F_depth.
func (k Counts) FaceCountAtDepth(depth int) int32 {
	if depth == 0 {
		return k.F0
	}
	// F_1 = H0; for depth >= 1, F_{depth} = H_{depth-1}.
	return k.HalfedgeCountAtDepth(depth - 1)
}

// EdgeCountAtDepth returns E_depth, following E_{l+1} = 2*E_l + H_l.
func (k Counts) EdgeCountAtDepth(depth int) int32 {
	e := k.E0
	h := k.H0
	for i := 0; i < depth; i++ {
		e = 2*e + h
		h *= 4
	}
	return e
}

// VertexCountAtDepth returns V_depth, following V_{l+1} = V_l + F_l + E_l.
func (k Counts) VertexCountAtDepth(depth int) int32 {
	v := k.V0
	f := k.F0
	e := k.E0
	h := k.H0
	for i := 0; i < depth; i++ {
		v = v + f + e
		f = h // F_{i+1} = H_i for the next iteration
		e = 2*e + h
		h *= 4
	}
	return v
}

// CreaseCountAtDepth returns the crease-record count at depth, always
// equal to the edge count at that depth.
func (k Counts) CreaseCountAtDepth(depth int) int32 {
	return k.EdgeCountAtDepth(depth)
}

// CumulativeVertexCount returns V0 + V1 + ... + V_depth, the vertex
// array offset at which level depth+1 begins.
func (k Counts) CumulativeVertexCount(depth int) int32 {
	var sum int32
	for l := 0; l <= depth; l++ {
		sum += k.VertexCountAtDepth(l)
	}
	return sum
}

// CumulativeHalfedgeCount returns H1 + ... + H_depth (levels >= 1 only;
// the cage's halfedges live in a separate array).
func (k Counts) CumulativeHalfedgeCount(depth int) int32 {
	var sum int32
	for l := 1; l <= depth; l++ {
		sum += k.HalfedgeCountAtDepth(l)
	}
	return sum
}

// CumulativeEdgeCount returns E1 + ... + E_depth.
func (k Counts) CumulativeEdgeCount(depth int) int32 {
	var sum int32
	for l := 1; l <= depth; l++ {
		sum += k.EdgeCountAtDepth(l)
	}
	return sum
}

// CumulativeFaceCount returns F1 + ... + F_depth.
func (k Counts) CumulativeFaceCount(depth int) int32 {
	var sum int32
	for l := 1; l <= depth; l++ {
		sum += k.FaceCountAtDepth(l)
	}
	return sum
}
