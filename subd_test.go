package ccsubdiv

import "testing"

func TestCreateAllocatesExpectedSizes(t *testing.T) {
	cage := unitCubeCage(t)
	s, err := Create(cage, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	if got := len(s.vertexPoints); int32(got) != s.counts.CumulativeVertexCount(2) {
		t.Errorf("len(vertexPoints) = %d, want %d", got, s.counts.CumulativeVertexCount(2))
	}
	if got := len(s.halfedgeTwinID); int32(got) != s.counts.CumulativeHalfedgeCount(2) {
		t.Errorf("len(halfedgeTwinID) = %d, want %d", got, s.counts.CumulativeHalfedgeCount(2))
	}
	if s.uvsEnabled {
		t.Error("uvsEnabled = true for a cage with no uvs")
	}
}

func TestClearVertexPointsLeavesCageUntouched(t *testing.T) {
	cage := unitCubeCage(t)
	s, err := Create(cage, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	for v := int32(0); v < int32(cage.VertexCount()); v++ {
		s.SetVertexPoint(v, Vector3{X: 99})
	}
	s.ClearVertexPoints()

	for v := int32(0); v < int32(cage.VertexCount()); v++ {
		if s.VertexPoint(v).X != 99 {
			t.Fatalf("ClearVertexPoints touched level-0 vertex %d", v)
		}
	}
}

func TestReleaseClosesPool(t *testing.T) {
	cage := unitCubeCage(t)
	s, err := Create(cage, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	pool := s.pool
	Release(s)

	if pool.IsRunning() {
		t.Error("Release did not close the worker pool")
	}
}
