package taxonomy

import "testing"

func TestPath_LeafToRoot(t *testing.T) {
	tax := Default()

	path := tax.Path("annoyed")
	if len(path) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(path))
	}
	if path[0].ID != "angry" {
		t.Errorf("expected root 'angry', got %q", path[0].ID)
	}
	if path[1].ID != "frustrated" {
		t.Errorf("expected mid 'frustrated', got %q", path[1].ID)
	}
	if path[2].ID != "annoyed" {
		t.Errorf("expected leaf 'annoyed', got %q", path[2].ID)
	}
}

func TestPath_Root(t *testing.T) {
	tax := Default()

	path := tax.Path("happy")
	if len(path) != 1 {
		t.Fatalf("expected 1 node, got %d", len(path))
	}
	if path[0].ID != "happy" {
		t.Errorf("expected 'happy', got %q", path[0].ID)
	}
}

func TestPath_UnknownID(t *testing.T) {
	tax := Default()

	if path := tax.Path("no-such-emotion"); path != nil {
		t.Errorf("expected nil path for unknown id, got %v", path)
	}
	if d := tax.Depth("no-such-emotion"); d != -1 {
		t.Errorf("expected depth -1 for unknown id, got %d", d)
	}
	if _, ok := tax.Root("no-such-emotion"); ok {
		t.Error("expected no root for unknown id")
	}
}

func TestPath_DanglingParent(t *testing.T) {
	tax := New([]Node{
		{ID: "orphan", Label: "Orphan", ParentID: "gone", Depth: 1},
	})

	if path := tax.Path("orphan"); path != nil {
		t.Errorf("expected nil path for dangling parent chain, got %v", path)
	}
}

func TestDepth_MatchesDeclaredDepth(t *testing.T) {
	tax := Default()

	for _, n := range defaultNodes {
		if got := tax.Depth(n.ID); got != n.Depth {
			t.Errorf("node %q: declared depth %d, path depth %d", n.ID, n.Depth, got)
		}
	}
}

func TestRoots_SevenCategories(t *testing.T) {
	tax := Default()

	roots := tax.Roots()
	if len(roots) != 7 {
		t.Fatalf("expected 7 roots, got %d", len(roots))
	}
	for _, r := range roots {
		if r.ParentID != "" || r.Depth != 0 {
			t.Errorf("root %q has parent %q depth %d", r.ID, r.ParentID, r.Depth)
		}
	}
}

func TestVAD_AllRootsInRange(t *testing.T) {
	tax := Default()

	for _, r := range tax.Roots() {
		v, ok := tax.VAD(r.ID)
		if !ok {
			t.Errorf("root %q has no VAD vector", r.ID)
			continue
		}
		for name, c := range map[string]float64{
			"valence": v.Valence, "arousal": v.Arousal, "dominance": v.Dominance,
		} {
			if c < -1 || c > 1 {
				t.Errorf("root %q: %s %v outside [-1, 1]", r.ID, name, c)
			}
		}
	}
}

func TestVAD_UnknownRoot(t *testing.T) {
	tax := Default()

	if v, ok := tax.VAD("annoyed"); ok || v != (VADVector{}) {
		t.Errorf("expected zero vector for non-root id, got %+v ok=%v", v, ok)
	}
}
