package web

// FPSCounter averages frame rate over one-second windows of
// requestAnimationFrame timestamps (milliseconds).
type FPSCounter struct {
	FrameCount int
	LastUpdate float64
	Current    float64
}

// Update counts a frame at currentTime.
func (f *FPSCounter) Update(currentTime float64) {
	f.FrameCount++

	elapsed := currentTime - f.LastUpdate
	if elapsed >= 1000 {
		f.Current = float64(f.FrameCount) / (elapsed / 1000)
		f.FrameCount = 0
		f.LastUpdate = currentTime
	}
}

// healthColor picks a stat colour from remaining health out of max.
func healthColor(health, max int) string {
	if max <= 0 {
		max = 1
	}
	pct := health * 100 / max
	switch {
	case pct > 75:
		return "#00ff00"
	case pct > 50:
		return "#88ff00"
	case pct > 25:
		return "#ffff00"
	default:
		return "#ff0000"
	}
}
