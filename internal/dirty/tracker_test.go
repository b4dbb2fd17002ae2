package dirty

import (
	"testing"
)

func TestZeroValueEmpty(t *testing.T) {
	var tr Tracker
	if tr.IsDirty() {
		t.Error("zero value should be empty")
	}
	if _, _, ok := tr.Region(); ok {
		t.Error("Region on empty tracker should report ok=false")
	}
}

func TestResetFull(t *testing.T) {
	tr := New()
	tr.ResetFull(50)

	min, max, ok := tr.Region()
	if !ok {
		t.Fatal("expected a dirty region after ResetFull")
	}
	if min != 0 || max != 50 {
		t.Errorf("region = [%d, %d), want [0, 50)", min, max)
	}
}

func TestExtend(t *testing.T) {
	tests := []struct {
		name       string
		delta      int
		currentRow int
		height     int
		wantMin    int
		wantMax    int
		wantDirty  bool
	}{
		{"scroll down exposes bottom band", 30, 0, 50, 50, 80, true},
		{"scroll up exposes top band", -10, 40, 50, 30, 40, true},
		{"zero delta is a no-op", 0, 25, 50, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.Extend(tt.delta, tt.currentRow, tt.height)
			min, max, ok := tr.Region()
			if ok != tt.wantDirty {
				t.Fatalf("dirty = %v, want %v", ok, tt.wantDirty)
			}
			if ok && (min != tt.wantMin || max != tt.wantMax) {
				t.Errorf("region = [%d, %d), want [%d, %d)", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

// Mirrors overlapping scroll requests on a height-50 canvas: a +30 scroll
// queued at row 0 dirties [50, 80); a -10 scroll queued at row 50 dirties
// [40, 50); the tracker accumulates the union [40, 80).
func TestExtendUnion(t *testing.T) {
	tr := New()
	tr.Extend(30, 0, 50)
	if min, max, _ := tr.Region(); min != 50 || max != 80 {
		t.Fatalf("after +30: region = [%d, %d), want [50, 80)", min, max)
	}

	tr.Extend(-10, 50, 50)
	min, max, ok := tr.Region()
	if !ok {
		t.Fatal("expected dirty region")
	}
	if min != 40 || max != 80 {
		t.Errorf("after -10: region = [%d, %d), want [40, 80)", min, max)
	}
}

func TestExtendOnlyWidens(t *testing.T) {
	tr := New()
	tr.Extend(30, 0, 50) // [50, 80)
	tr.Extend(5, 0, 50)  // [50, 55), inside, no change
	if min, max, _ := tr.Region(); min != 50 || max != 80 {
		t.Errorf("region = [%d, %d), want [50, 80)", min, max)
	}
}

func TestClear(t *testing.T) {
	tr := New()
	tr.ResetFull(50)
	tr.Clear()

	if tr.IsDirty() {
		t.Error("tracker should be empty after Clear")
	}

	// Extend after Clear starts a fresh interval rather than widening the
	// cleared one.
	tr.Extend(10, 20, 50)
	if min, max, _ := tr.Region(); min != 70 || max != 80 {
		t.Errorf("region = [%d, %d), want [70, 80)", min, max)
	}
}
