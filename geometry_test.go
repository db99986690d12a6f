package ccsubdiv

import "testing"

func TestCubeFacePointsAreCentroids(t *testing.T) {
	cage := unitCubeCage(t)
	s, err := Create(cage, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	Refine_Gather(s)

	// Face 1 is the top face (z = +0.5, vertices 4,7,6,5); its centroid
	// is (0, 0, 0.5).
	v0 := s.counts.VertexCountAtDepth(0)
	facePoint := s.VertexPoint(s.facePointSlot(1, v0, 1))
	want := Vector3{X: 0, Y: 0, Z: 0.5}
	if !facePoint.Approx(want, 1e-5) {
		t.Errorf("top face point = %+v, want %+v", facePoint, want)
	}
}

func TestUncreasedVertexPointMatchesHandComputedValue(t *testing.T) {
	cage := unitCubeCage(t)
	s, err := Create(cage, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	Refine_NoCreases_Gather(s)

	// Vertex 6 is (0.5, 0.5, 0.5), valence 3, incident to the top, right
	// and back faces. Face-point average (0.5,0.5,0.5)/3, edge-point
	// average (0.75,0.75,0.75)/3, n=3 gives, by the closed form
	// VP = (4*eBar - fBar + (n-3)*V) / n, the value (0.2778, 0.2778, 0.2778).
	got := s.VertexPoint(s.carriedVertexSlot(1, 6))
	want := Vector3{X: 5.0 / 18, Y: 5.0 / 18, Z: 5.0 / 18}
	if !got.Approx(want, 1e-5) {
		t.Errorf("vertex 6 refined position = %+v, want %+v", got, want)
	}
}

func TestGatherAndScatterAgree(t *testing.T) {
	for _, creased := range []bool{false, true} {
		cage := unitCubeCage(t)
		if creased {
			// Put some semi-sharp creases on the cage so the creased
			// code paths run too.
			for e := range cage.creases {
				cage.creases[e].Sharpness = float32(e%3) * 0.7
			}
		}

		gathered, err := Create(cage, 2)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		defer Release(gathered)

		scattered, err := Create(cage, 2)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		defer Release(scattered)

		if creased {
			Refine_Gather(gathered)
			Refine_Scatter(scattered)
		} else {
			Refine_NoCreases_Gather(gathered)
			Refine_NoCreases_Scatter(scattered)
		}

		n := len(gathered.vertexPoints)
		for i := 0; i < n; i++ {
			a := gathered.vertexPoints[i]
			b := scattered.vertexPoints[i]
			if !a.Approx(b, 1e-4) {
				t.Fatalf("creased=%v: vertex point %d differs: gather=%+v scatter=%+v", creased, i, a, b)
			}
		}
	}
}

func TestZeroSharpnessMatchesNoCreases(t *testing.T) {
	cageA := unitCubeCage(t)
	cageB := unitCubeCage(t)

	sa, err := Create(cageA, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(sa)
	sb, err := Create(cageB, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(sb)

	Refine_Gather(sa)
	Refine_NoCreases_Gather(sb)

	for i := range sa.vertexPoints {
		if !sa.vertexPoints[i].Approx(sb.vertexPoints[i], 1e-6) {
			t.Fatalf("vertex point %d differs with all sharpness zero: %+v vs %+v",
				i, sa.vertexPoints[i], sb.vertexPoints[i])
		}
	}
}

func TestPinnedCreaseHoldsVertexFixed(t *testing.T) {
	cage := unitCubeCage(t)
	for e := range cage.creases {
		cage.creases[e].Sharpness = 1e6
	}

	s, err := Create(cage, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Release(s)

	Refine_Gather(s)

	for v := int32(0); v < int32(cage.VertexCount()); v++ {
		old := cage.VertexPoint(v)
		for l := 1; l <= s.maxDepth; l++ {
			got := s.VertexPoint(s.carriedVertexSlot(l, v))
			if !got.Approx(old, 1e-3) {
				t.Fatalf("level %d vertex %d moved under infinite sharpness: %+v vs %+v", l, v, got, old)
			}
		}
	}
}
