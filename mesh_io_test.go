package ccsubdiv

import (
	"bytes"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cage := unitCubeCage(t)
	cage.creases[0].Sharpness = 2.5

	var buf bytes.Buffer
	if err := SaveTo(&buf, cage); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(&buf)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if loaded.VertexCount() != cage.VertexCount() ||
		loaded.FaceCount() != cage.FaceCount() ||
		loaded.EdgeCount() != cage.EdgeCount() ||
		loaded.HalfedgeCount() != cage.HalfedgeCount() {
		t.Fatalf("loaded counts differ from saved: got V=%d F=%d E=%d H=%d",
			loaded.VertexCount(), loaded.FaceCount(), loaded.EdgeCount(), loaded.HalfedgeCount())
	}

	for v := int32(0); v < int32(cage.VertexCount()); v++ {
		if loaded.VertexPoint(v) != cage.VertexPoint(v) {
			t.Errorf("vertex %d: got %+v, want %+v", v, loaded.VertexPoint(v), cage.VertexPoint(v))
		}
	}
	for e := int32(0); e < int32(cage.EdgeCount()); e++ {
		if loaded.CreaseSharpness(e) != cage.CreaseSharpness(e) {
			t.Errorf("edge %d sharpness: got %v, want %v", e, loaded.CreaseSharpness(e), cage.CreaseSharpness(e))
		}
	}
	for h := int32(0); h < int32(cage.HalfedgeCount()); h++ {
		if loaded.HalfedgeTwinID(h) != cage.HalfedgeTwinID(h) ||
			loaded.HalfedgeNextID(h) != cage.HalfedgeNextID(h) ||
			loaded.HalfedgePrevID(h) != cage.HalfedgePrevID(h) ||
			loaded.HalfedgeFaceID(h) != cage.HalfedgeFaceID(h) ||
			loaded.HalfedgeEdgeID(h) != cage.HalfedgeEdgeID(h) ||
			loaded.HalfedgeVertexID(h) != cage.HalfedgeVertexID(h) {
			t.Errorf("halfedge %d differs after round trip", h)
		}
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not-a-mesh-container-at-all")
	if _, err := LoadFrom(buf); err == nil {
		t.Fatal("expected an error for a bad magic header")
	}
}

func TestLoadRejectsShortRead(t *testing.T) {
	cage := unitCubeCage(t)
	var full bytes.Buffer
	if err := SaveTo(&full, cage); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	truncated := bytes.NewReader(full.Bytes()[:full.Len()-4])
	if _, err := LoadFrom(truncated); err == nil {
		t.Fatal("expected an error for a truncated container")
	}
}
