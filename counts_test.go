package ccsubdiv

import "testing"

func TestCountsUnitCube(t *testing.T) {
	cage := unitCubeCage(t)
	k := NewCounts(cage)

	if got := k.VertexCountAtDepth(0); got != 8 {
		t.Errorf("V0 = %d, want 8", got)
	}
	if got := k.FaceCountAtDepth(0); got != 6 {
		t.Errorf("F0 = %d, want 6", got)
	}
	if got := k.EdgeCountAtDepth(0); got != 12 {
		t.Errorf("E0 = %d, want 12", got)
	}
	if got := k.HalfedgeCountAtDepth(0); got != 24 {
		t.Errorf("H0 = %d, want 24", got)
	}

	if got := k.VertexCountAtDepth(1); got != 26 {
		t.Errorf("V1 = %d, want 26", got)
	}
	if got := k.VertexCountAtDepth(2); got != 98 {
		t.Errorf("V2 = %d, want 98", got)
	}
	if got := k.FaceCountAtDepth(1); got != 24 {
		t.Errorf("F1 = %d, want 24", got)
	}
	if got := k.EdgeCountAtDepth(1); got != 48 {
		t.Errorf("E1 = %d, want 48", got)
	}
	if got := k.HalfedgeCountAtDepth(1); got != 96 {
		t.Errorf("H1 = %d, want 96", got)
	}
}

func TestCumulativeCounts(t *testing.T) {
	cage := unitCubeCage(t)
	k := NewCounts(cage)

	want := k.VertexCountAtDepth(0) + k.VertexCountAtDepth(1) + k.VertexCountAtDepth(2)
	if got := k.CumulativeVertexCount(2); got != want {
		t.Errorf("CumulativeVertexCount(2) = %d, want %d", got, want)
	}

	wantH := k.HalfedgeCountAtDepth(1) + k.HalfedgeCountAtDepth(2)
	if got := k.CumulativeHalfedgeCount(2); got != wantH {
		t.Errorf("CumulativeHalfedgeCount(2) = %d, want %d", got, wantH)
	}
}

func TestCountsTetrahedron(t *testing.T) {
	cage := tetrahedronCage(t)
	k := NewCounts(cage)

	if got := k.HalfedgeCountAtDepth(0); got != 12 {
		t.Errorf("H0 = %d, want 12", got)
	}
	// Each triangle splits into 3 quads: cage refinement produces one
	// quad per cage halfedge, F1 = H0.
	if got := k.FaceCountAtDepth(1); got != 12 {
		t.Errorf("F1 = %d, want 12", got)
	}
}
