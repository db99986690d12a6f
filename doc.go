// Package ccsubdiv implements Catmull-Clark subdivision of a polygonal
// control mesh into a hierarchy of semi-regular (all-quad) meshes.
//
// # Overview
//
// Given an arbitrary-polygon "cage" and a subdivision depth D, ccsubdiv
// produces, at every level 0..D, the full halfedge topology and per-vertex
// geometry that result from applying the Catmull-Clark rules that many
// times. It
// supports the DeRose et al. semi-sharp crease extension, optional UV
// interpolation, and a bit-exact on-disk mesh container.
//
// # Quick Start
//
//	cage := ccsubdiv.NewCage(halfedges, creases, vertexPoints, uvs,
//		vertexToHalfedgeFirst, edgeToHalfedgeFirst, faceToHalfedgeFirst)
//
//	subd, err := ccsubdiv.Create(cage, 3)
//	if err != nil {
//		// ...
//	}
//	defer ccsubdiv.Release(subd)
//
//	ccsubdiv.Refine_Gather(subd)
//
// # Gather and scatter
//
// Every geometry kernel exists in two algorithmically equivalent forms:
// gather (one loop iteration per output point) and scatter (one loop
// iteration per halfedge, accumulating atomically), both run across the
// worker pool. Refine_Gather/Refine_Scatter and
// their NoCreases variants select between them; both are exposed as
// individual stage functions for test harnesses and custom pipelines.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Cage, Subd, Vector3, Vector2, the Refine_* entry points
//   - Addressing: halfedge_access.go, the unified level-aware queries
//     every refinement and geometry kernel is built on
//   - internal/parallel: the worker-pool fork-join primitive kernels run on
//   - internal/atomicfloat: CAS-loop atomic float accumulation for scatter
//   - config/engineconfig: YAML-backed runtime configuration
package ccsubdiv
