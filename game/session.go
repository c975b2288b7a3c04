package game

// SessionState is the numeric state of a play session. It is the only thing
// persisted between page loads; entity positions are not.
type SessionState struct {
	Score          int     `json:"score" msgpack:"score"`
	Health         int     `json:"health" msgpack:"health"`
	BulletCooldown float64 `json:"bulletCooldown" msgpack:"bulletCooldown"`
	BulletSpeed    float64 `json:"bulletSpeed" msgpack:"bulletSpeed"`
}

// NewSessionState returns a fresh session using the initial values of cfg.
func NewSessionState(cfg Config) SessionState {
	return SessionState{
		Score:          0,
		Health:         cfg.InitialHealth,
		BulletCooldown: cfg.InitialBulletCooldown,
		BulletSpeed:    cfg.InitialBulletSpeed,
	}
}
