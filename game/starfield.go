package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/simukka/ufo-defense/common"
)

// StarField is the drifting particle backdrop.
type StarField struct {
	Stars []mgl64.Vec3
	rng   common.Source
}

// NewStarField scatters n stars through the star box.
func NewStarField(n int, rng common.Source) *StarField {
	f := &StarField{Stars: make([]mgl64.Vec3, n), rng: rng}
	for i := range f.Stars {
		f.Stars[i] = mgl64.Vec3{
			common.Spread(rng, StarSpreadX),
			common.Spread(rng, StarSpreadY),
			common.Spread(rng, StarSpreadZ),
		}
	}
	return f
}

// Update drifts every star toward the camera. Stars already past the near
// plane are moved back to the far one instead.
func (f *StarField) Update() {
	for i := range f.Stars {
		s := &f.Stars[i]
		if s[2] > StarResetDepth {
			s[0] = common.Spread(f.rng, StarResetX)
			s[1] = common.Spread(f.rng, StarResetY)
			s[2] = -StarResetDepth
			continue
		}
		s[2] += StarDrift
	}
}
