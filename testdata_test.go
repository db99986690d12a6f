package ccsubdiv

// unitCubeCage returns a closed, consistently-wound 8-vertex, 6-face,
// 12-edge, 24-halfedge cube, used as the seed scenario from the testable
// properties suite (unit cube, D up to 2).
func unitCubeCage(t testingT) *Cage {
	positions := []Vector3{
		{X: -0.5, Y: -0.5, Z: -0.5}, // 0
		{X: 0.5, Y: -0.5, Z: -0.5},  // 1
		{X: 0.5, Y: 0.5, Z: -0.5},   // 2
		{X: -0.5, Y: 0.5, Z: -0.5},  // 3
		{X: -0.5, Y: -0.5, Z: 0.5},  // 4
		{X: 0.5, Y: -0.5, Z: 0.5},   // 5
		{X: 0.5, Y: 0.5, Z: 0.5},    // 6
		{X: -0.5, Y: 0.5, Z: 0.5},   // 7
	}
	faces := [][]int32{
		{0, 1, 2, 3}, // bottom, z = -0.5
		{4, 7, 6, 5}, // top, z = +0.5
		{0, 4, 5, 1}, // front, y = -0.5
		{1, 5, 6, 2}, // right, x = +0.5
		{2, 6, 7, 3}, // back, y = +0.5
		{3, 7, 4, 0}, // left, x = -0.5
	}
	cage, err := BuildCageFromPolygons(faces, positions, nil, nil)
	if err != nil {
		t.Fatalf("unitCubeCage: %v", err)
	}
	return cage
}

// tetrahedronCage returns a closed 4-vertex, 4-face, 6-edge, 12-halfedge
// tetrahedron of triangles, the second seed scenario.
func tetrahedronCage(t testingT) *Cage {
	positions := []Vector3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	faces := [][]int32{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
		{1, 3, 2},
	}
	cage, err := BuildCageFromPolygons(faces, positions, nil, nil)
	if err != nil {
		t.Fatalf("tetrahedronCage: %v", err)
	}
	return cage
}

// testingT is the subset of *testing.T the fixtures need, so they can be
// shared without importing "testing" into a non-_test.go file.
type testingT interface {
	Fatalf(format string, args ...any)
}
