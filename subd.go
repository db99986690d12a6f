package ccsubdiv

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/polymesh-go/ccsubdiv/internal/parallel"
)

// Subd is a subdivision hierarchy rooted at a cage: levels 1..MaxDepth of
// uniformly-refined all-quad meshes, plus their geometry. It exclusively
// owns every derived array; the cage it was built from is read-only and
// never mutated by any operation here.
//
// Every derived-level array is a single flat slice spanning all levels
// 1..MaxDepth, addressed through the Base*Offset helpers so a level's
// elements sit in one contiguous run (the "arena of indices" layout:
// int32 IDs into shared arrays, no pointer graph, trivially serializable
// and safe to touch from many goroutines at disjoint indices).
type Subd struct {
	cage     *Cage
	counts   Counts
	maxDepth int

	halfedgeTwinID   []int32
	halfedgeEdgeID   []int32
	halfedgeVertexID []int32
	halfedgeUvID     []int32

	creaseNextID    []int32
	creasePrevID    []int32
	creaseSharpness []float32

	vertexPoints []Vector3
	uvs          []Vector2
	uvsEnabled   bool

	pool *parallel.WorkerPool
}

// Pool returns the worker team this hierarchy's kernels run on. The team
// is created once in Create and reused across every refinement call,
// per §5's "team is reused across kernels within one refinement invocation".
func (s *Subd) Pool() *parallel.WorkerPool { return s.pool }

// Cage returns the immutable control mesh this hierarchy was built from.
func (s *Subd) Cage() *Cage { return s.cage }

// Counts returns the cage-derived per-level count header.
func (s *Subd) Counts() Counts { return s.counts }

// MaxDepth returns D, the deepest level this hierarchy was allocated for.
func (s *Subd) MaxDepth() int { return s.maxDepth }

// UvsEnabled reports whether this hierarchy carries UV storage.
func (s *Subd) UvsEnabled() bool { return s.uvsEnabled }

// Create allocates a subdivision hierarchy for cage, sized for maxDepth
// levels of refinement, with a worker team sized by GOMAXPROCS. Storage
// is allocated but left zero; callers run RefineHalfedges / RefineCreases
// / RefineVertexUvs / the geometry kernels (directly, or via Refine_Gather
// and friends) to populate it.
func Create(cage *Cage, maxDepth int) (*Subd, error) {
	return CreateWithWorkers(cage, maxDepth, 0)
}

// CreateWithWorkers is Create with an explicit worker count (0 means
// GOMAXPROCS), for callers wiring the engine to engineconfig.Config.Workers.
func CreateWithWorkers(cage *Cage, maxDepth, workers int) (*Subd, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("create subd at depth %d: %w", maxDepth, ErrInvalidDepth)
	}
	if cage.VertexCount() == 0 || cage.FaceCount() == 0 || cage.EdgeCount() == 0 || cage.HalfedgeCount() == 0 {
		return nil, ErrEmptyCage
	}

	counts := NewCounts(cage)
	s := &Subd{
		cage:     cage,
		counts:   counts,
		maxDepth: maxDepth,
	}

	halfedgeTotal := counts.CumulativeHalfedgeCount(maxDepth)
	edgeTotal := counts.CumulativeEdgeCount(maxDepth)
	vertexTotal := counts.CumulativeVertexCount(maxDepth)

	s.halfedgeTwinID = make([]int32, halfedgeTotal)
	s.halfedgeEdgeID = make([]int32, halfedgeTotal)
	s.halfedgeVertexID = make([]int32, halfedgeTotal)
	s.halfedgeUvID = make([]int32, halfedgeTotal)

	s.creaseNextID = make([]int32, edgeTotal)
	s.creasePrevID = make([]int32, edgeTotal)
	s.creaseSharpness = make([]float32, edgeTotal)

	// Level 0's vertex points are the cage's own; the derived portion
	// starts at V0 and runs through the end of the hierarchy.
	s.vertexPoints = make([]Vector3, vertexTotal)
	copy(s.vertexPoints, cage.vertexPoints)

	if cage.UvCount() > 0 {
		s.uvsEnabled = true
		s.uvs = make([]Vector2, halfedgeTotal)
	}

	s.pool = parallel.NewWorkerPool(workers)

	Logger().Info("subd created",
		zap.Int("maxDepth", maxDepth),
		zap.Int32("halfedgeCount", halfedgeTotal),
		zap.Int32("vertexCount", vertexTotal),
		zap.Bool("uvsEnabled", s.uvsEnabled),
		zap.Int("workers", s.pool.Workers()),
	)

	return s, nil
}

// Release closes a Subd's worker team and drops its storage. Go's
// garbage collector reclaims the backing arrays once the caller's last
// reference is gone, but the pool's goroutines must be shut down
// explicitly or they leak.
func Release(s *Subd) {
	if s.pool != nil {
		s.pool.Close()
	}
	*s = Subd{}
}

// ReleaseMesh drops a Cage's storage, mirroring Release.
func ReleaseMesh(c *Cage) {
	*c = Cage{}
}

// BaseHalfedgeOffset returns the flat-array offset at which level l's
// (l >= 1) halfedge records begin.
func (s *Subd) BaseHalfedgeOffset(l int) int32 {
	return s.counts.CumulativeHalfedgeCount(l - 1)
}

// BaseEdgeOffset returns the flat-array offset at which level l's
// (l >= 1) edge/crease records begin.
func (s *Subd) BaseEdgeOffset(l int) int32 {
	return s.counts.CumulativeEdgeCount(l - 1)
}

// BaseVertexOffset returns the flat-array offset at which level l's
// (l >= 0) vertex points begin. Level 0 starts at 0.
func (s *Subd) BaseVertexOffset(l int) int32 {
	if l == 0 {
		return 0
	}
	return s.counts.CumulativeVertexCount(l - 1)
}

// VertexPoint returns the position of global vertex index v (spanning
// every level, with level 0 first).
func (s *Subd) VertexPoint(v int32) Vector3 { return s.vertexPoints[v] }

// SetVertexPoint writes the position of global vertex index v.
func (s *Subd) SetVertexPoint(v int32, p Vector3) { s.vertexPoints[v] = p }

// VertexPoints exposes the flat, cumulative vertex-point array directly,
// for bulk operations such as ClearVertexPoints and container I/O.
func (s *Subd) VertexPoints() []Vector3 { return s.vertexPoints }

// ClearVertexPoints zero-fills every derived-level vertex point (level 0,
// the cage's own points, is left untouched). Required before any scatter
// pass, per the accumulate-into-zero contract of §5's shared-resource policy.
func (s *Subd) ClearVertexPoints() {
	base := s.BaseVertexOffset(1)
	clear := s.vertexPoints[base:]
	for i := range clear {
		clear[i] = Vector3{}
	}
}

// HalfedgeUv returns the UV at global halfedge index h, or the zero UV
// if this hierarchy was not built with UVs.
func (s *Subd) HalfedgeUv(h int32) Vector2 {
	if !s.uvsEnabled {
		return Vector2{}
	}
	return s.uvs[h]
}

// SetHalfedgeUv writes the UV at global halfedge index h.
func (s *Subd) SetHalfedgeUv(h int32, uv Vector2) { s.uvs[h] = uv }
