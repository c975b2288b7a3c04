package game

// Score wraps SessionState.Score and mirrors every change to the HUD.
type Score struct {
	state *SessionState
	hud   HUD
}

func NewScore(state *SessionState, hud HUD) *Score {
	return &Score{state: state, hud: hud}
}

func (s *Score) Value() int {
	return s.state.Score
}

// Set stores n, floored at zero.
func (s *Score) Set(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Score = n
	s.hud.UpdateScore(n)
}

// Increase adds n points.
func (s *Score) Increase(n int) {
	s.Set(s.state.Score + n)
}

// Decrease subtracts n points. The score never drops below zero.
func (s *Score) Decrease(n int) {
	s.Set(s.state.Score - n)
}

func (s *Score) Reset() {
	s.Set(0)
}

// Refresh pushes the current value to the HUD without changing it.
func (s *Score) Refresh() {
	s.hud.UpdateScore(s.state.Score)
}

// Health wraps SessionState.Health and mirrors every change to the HUD.
type Health struct {
	state   *SessionState
	hud     HUD
	initial int
}

func NewHealth(state *SessionState, hud HUD, initial int) *Health {
	return &Health{state: state, hud: hud, initial: initial}
}

func (h *Health) Value() int {
	return h.state.Health
}

// Set stores n, floored at zero. It returns true only when the value moves
// from positive to zero.
func (h *Health) Set(n int) (depleted bool) {
	prev := h.state.Health
	if n < 0 {
		n = 0
	}
	h.state.Health = n
	h.hud.UpdateHealth(n)
	return prev > 0 && n == 0
}

func (h *Health) Increase(n int) {
	h.Set(h.state.Health + n)
}

// Decrease removes n health and reports whether this call ended the game.
// Further calls at zero report false.
func (h *Health) Decrease(n int) (gameOver bool) {
	return h.Set(h.state.Health - n)
}

// Reset restores the initial health.
func (h *Health) Reset() {
	h.Set(h.initial)
}

func (h *Health) Refresh() {
	h.hud.UpdateHealth(h.state.Health)
}
