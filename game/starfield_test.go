package game

import (
	"testing"

	"github.com/simukka/ufo-defense/common"
)

func TestStarField_StartsInsideBox(t *testing.T) {
	f := NewStarField(StarCount, common.NewSeededRNG(1))

	if len(f.Stars) != StarCount {
		t.Fatalf("Expected %d stars, got %d", StarCount, len(f.Stars))
	}
	for _, s := range f.Stars {
		if s.X() < -StarSpreadX/2 || s.X() >= StarSpreadX/2 ||
			s.Y() < -StarSpreadY/2 || s.Y() >= StarSpreadY/2 ||
			s.Z() < -StarSpreadZ/2 || s.Z() >= StarSpreadZ/2 {
			t.Fatalf("star %v outside the box", s)
		}
	}
}

func TestStarField_WrapsPastNearPlane(t *testing.T) {
	f := NewStarField(2, common.NewSeededRNG(1))
	f.Stars[0][2] = StarResetDepth + StarDrift/2
	f.Stars[1][2] = 0

	f.Update()

	if f.Stars[0].Z() != -StarResetDepth {
		t.Errorf("Expected wrapped star at %f, got %f", -StarResetDepth, f.Stars[0].Z())
	}
	if f.Stars[0].X() < -StarResetX/2 || f.Stars[0].X() >= StarResetX/2 {
		t.Errorf("Expected wrapped x inside reset spread, got %f", f.Stars[0].X())
	}
	if f.Stars[1].Z() != StarDrift {
		t.Errorf("Expected drift to %f, got %f", StarDrift, f.Stars[1].Z())
	}
}
