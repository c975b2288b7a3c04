package game

import "github.com/simukka/ufo-defense/audio"

// ResolveCollisions runs the targeting beam and bullet hit checks. Aliens
// are scanned from the last roster slot to the first and hits are only
// recorded; bullets are removed and alien slots replaced once the scan is
// complete.
func (g *Game) ResolveCollisions() {
	ship := g.Ship
	beam := &ship.Beam
	beam.Origin = ship.Position
	beam.Length = BeamDefaultLength
	beam.Locked = false

	g.hits = g.hits[:0]
	bullets := g.Bullets.All()

	g.Aliens.ForEachReverse(func(a *Alien, i int) {
		if ship.BeamEnabled && a.PlanarDistance(ship.Position) < g.Config.LockOnRadius {
			if d := a.DepthDistance(ship.Position); !beam.Locked || d < beam.Length {
				beam.Length = d
				beam.Locked = true
			}
		}

		for j := len(bullets) - 1; j >= 0; j-- {
			b := bullets[j]
			if !b.Alive {
				continue
			}
			if b.Position.Sub(a.Position).Len() < g.Config.HitRadius {
				g.Bullets.Kill(b)
				g.hits = append(g.hits, i)
				break
			}
		}
	})

	if ship.BeamEnabled {
		g.scene.SetBeam(beam)
	}

	if len(g.hits) == 0 {
		return
	}
	g.Bullets.RemoveDead()
	for _, i := range g.hits {
		g.Aliens.Replace(i)
		g.Score.Increase(g.Config.HitReward)
		g.sounds.Play(audio.Hit)
	}
	Debugf("resolved %d hits, score %d", len(g.hits), g.Score.Value())
}
