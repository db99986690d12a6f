package ccsubdiv

// HalfedgeCage is a level-0 halfedge record. Unlike the semi-regular
// halfedges of derived levels, a cage face ring may have any length, so
// next/prev/face cannot be derived arithmetically and are stored explicitly.
type HalfedgeCage struct {
	TwinID   int32
	NextID   int32
	PrevID   int32
	FaceID   int32
	EdgeID   int32
	VertexID int32
	UvID     int32
}

// Crease is a per-edge sharpness record, doubly linked into a chain of
// collinear sharp edges. Sharpness 0 means smooth.
type Crease struct {
	NextID    int32
	PrevID    int32
	Sharpness float32
}

// Cage is the immutable level-0 input mesh: an arbitrary-polygon halfedge
// mesh with vertex positions, optional UVs, and per-edge crease sharpness.
// Once constructed it is never mutated; a Subd holds it by reference and
// reads it throughout refinement.
type Cage struct {
	halfedges            []HalfedgeCage
	creases              []Crease
	vertexPoints         []Vector3
	uvs                  []Vector2
	vertexToHalfedgeFirst []int32
	edgeToHalfedgeFirst   []int32
	faceToHalfedgeFirst   []int32
}

// NewCage builds a Cage from caller-supplied arrays. The caller owns
// topology correctness (spec §7): twins must reciprocate, next/prev must
// close each face ring, and every required ID must be non-negative. The
// engine does not validate and behavior is undefined if these invariants
// are violated.
//
// vertexToHalfedgeFirst, edgeToHalfedgeFirst and faceToHalfedgeFirst each
// give one halfedge incident to the corresponding vertex/edge/face; they
// are not derived because an arbitrary cage can't derive them arithmetically.
func NewCage(
	halfedges []HalfedgeCage,
	creases []Crease,
	vertexPoints []Vector3,
	uvs []Vector2,
	vertexToHalfedgeFirst, edgeToHalfedgeFirst, faceToHalfedgeFirst []int32,
) *Cage {
	return &Cage{
		halfedges:             halfedges,
		creases:               creases,
		vertexPoints:          vertexPoints,
		uvs:                   uvs,
		vertexToHalfedgeFirst: vertexToHalfedgeFirst,
		edgeToHalfedgeFirst:   edgeToHalfedgeFirst,
		faceToHalfedgeFirst:   faceToHalfedgeFirst,
	}
}

// VertexCount returns V0.
func (c *Cage) VertexCount() int { return len(c.vertexPoints) }

// FaceCount returns F0.
func (c *Cage) FaceCount() int { return len(c.faceToHalfedgeFirst) }

// EdgeCount returns E0.
func (c *Cage) EdgeCount() int { return len(c.edgeToHalfedgeFirst) }

// HalfedgeCount returns H0.
func (c *Cage) HalfedgeCount() int { return len(c.halfedges) }

// UvCount returns the number of distinct cage UVs (may be 0).
func (c *Cage) UvCount() int { return len(c.uvs) }

// CreaseCount returns the number of crease records, always equal to E0.
func (c *Cage) CreaseCount() int { return len(c.creases) }

// FaceToHalfedgeID returns a halfedge on the ring of face f.
func (c *Cage) FaceToHalfedgeID(f int32) int32 { return c.faceToHalfedgeFirst[f] }

// EdgeToHalfedgeID returns one of the (at most two) halfedges mapping to edge e.
func (c *Cage) EdgeToHalfedgeID(e int32) int32 { return c.edgeToHalfedgeFirst[e] }

// VertexToHalfedgeID returns a halfedge whose origin is vertex v.
func (c *Cage) VertexToHalfedgeID(v int32) int32 { return c.vertexToHalfedgeFirst[v] }

func (c *Cage) HalfedgeTwinID(h int32) int32   { return c.halfedges[h].TwinID }
func (c *Cage) HalfedgeNextID(h int32) int32   { return c.halfedges[h].NextID }
func (c *Cage) HalfedgePrevID(h int32) int32   { return c.halfedges[h].PrevID }
func (c *Cage) HalfedgeFaceID(h int32) int32   { return c.halfedges[h].FaceID }
func (c *Cage) HalfedgeEdgeID(h int32) int32   { return c.halfedges[h].EdgeID }
func (c *Cage) HalfedgeVertexID(h int32) int32 { return c.halfedges[h].VertexID }
func (c *Cage) HalfedgeUvID(h int32) int32     { return c.halfedges[h].UvID }

// HalfedgeVertexPoint returns the position of halfedge h's origin vertex.
func (c *Cage) HalfedgeVertexPoint(h int32) Vector3 {
	return c.vertexPoints[c.halfedges[h].VertexID]
}

// HalfedgeVertexUv returns the UV attached to halfedge h, or the zero UV
// if the cage carries none.
func (c *Cage) HalfedgeVertexUv(h int32) Vector2 {
	if len(c.uvs) == 0 {
		return Vector2{}
	}
	return c.uvs[c.halfedges[h].UvID]
}

// VertexPoint returns the position of vertex v.
func (c *Cage) VertexPoint(v int32) Vector3 { return c.vertexPoints[v] }

// CreaseSharpness returns the sharpness of edge e.
func (c *Cage) CreaseSharpness(e int32) float32 { return c.creases[e].Sharpness }

// CreaseNextID / CreasePrevID walk the sharpness chain among collinear sharp edges.
func (c *Cage) CreaseNextID(e int32) int32 { return c.creases[e].NextID }
func (c *Cage) CreasePrevID(e int32) int32 { return c.creases[e].PrevID }

// HalfedgeSharpness returns the sharpness of the edge a halfedge sits on.
func (c *Cage) HalfedgeSharpness(h int32) float32 {
	return c.creases[c.halfedges[h].EdgeID].Sharpness
}

// PrevVertexHalfedgeID rotates backward around the origin vertex of h
// (twin(prev(h))), used to walk a vertex's one-ring. Returns -1 if the
// ring opens up (boundary) before closing.
func (c *Cage) PrevVertexHalfedgeID(h int32) int32 {
	p := c.HalfedgePrevID(h)
	return c.HalfedgeTwinID(p)
}

// NextVertexHalfedgeID rotates forward around the origin vertex of h
// (next(twin(h))), the dual direction to PrevVertexHalfedgeID. Returns -1
// if h is a boundary halfedge.
func (c *Cage) NextVertexHalfedgeID(h int32) int32 {
	t := c.HalfedgeTwinID(h)
	if t < 0 {
		return -1
	}
	return c.HalfedgeNextID(t)
}
