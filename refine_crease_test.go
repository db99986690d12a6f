package ccsubdiv

import "testing"

func TestRefineCreasesDecaysSharpness(t *testing.T) {
	cage := unitCubeCage(t)
	cage.creases[0].Sharpness = 4

	s, err := Create(cage, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	RefineCreases(s, s.pool)

	// Chaikin-style decay loses about 1 unit of sharpness per level;
	// after two levels a sharpness-4 edge's descendants should have
	// dropped to roughly 4-2=2, clamped at zero from below.
	base := s.BaseEdgeOffset(2)
	found := false
	for i := int32(0); i < s.counts.EdgeCountAtDepth(2); i++ {
		sh := s.creaseSharpness[base+i]
		if sh > 0 {
			found = true
			if sh > 4 {
				t.Errorf("level 2 sharpness %v exceeds the level 0 value of 4", sh)
			}
		}
	}
	if !found {
		t.Error("expected at least one descendant edge to carry nonzero sharpness")
	}
}

func TestRefineCreasesNeverNegative(t *testing.T) {
	cage := unitCubeCage(t)
	cage.creases[0].Sharpness = 0.1

	s, err := Create(cage, 3)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	RefineCreases(s, s.pool)

	for i := range s.creaseSharpness {
		if s.creaseSharpness[i] < 0 {
			t.Fatalf("creaseSharpness[%d] = %v, want >= 0", i, s.creaseSharpness[i])
		}
	}
}
