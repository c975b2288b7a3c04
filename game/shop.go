package game

import "fmt"

// Upgrade is a purchasable change to the session.
type Upgrade int

const (
	CooldownReduction Upgrade = iota
	BulletSpeedIncrease
	HealthIncrease
)

func (u Upgrade) String() string {
	switch u {
	case CooldownReduction:
		return "cooldown-reduction"
	case BulletSpeedIncrease:
		return "bullet-speed-increase"
	case HealthIncrease:
		return "health-increase"
	default:
		return fmt.Sprintf("upgrade(%d)", int(u))
	}
}

// Upgrade step sizes
const (
	CooldownStep    = 0.05
	BulletSpeedStep = 0.05
	HealthStep      = 1
)

// ApplyUpgrade mutates the session by one step of u.
func ApplyUpgrade(s *SessionState, u Upgrade) {
	switch u {
	case CooldownReduction:
		s.BulletCooldown -= CooldownStep
	case BulletSpeedIncrease:
		s.BulletSpeed += BulletSpeedStep
	case HealthIncrease:
		s.Health += HealthStep
	}
}

// amount returns the session value u acts on.
func (u Upgrade) amount(s *SessionState) float64 {
	switch u {
	case CooldownReduction:
		return s.BulletCooldown
	case BulletSpeedIncrease:
		return s.BulletSpeed
	case HealthIncrease:
		return float64(s.Health)
	}
	return 0
}

// lowerIsBetter marks upgrades that decrease their value toward a floor.
func (u Upgrade) lowerIsBetter() bool {
	return u == CooldownReduction
}

// ShopItem is one entry on the shop screen.
type ShopItem struct {
	Key         string
	Name        string
	Description string
	Cost        int
	Upgrade     Upgrade
	Limit       float64
}

// DefaultShopItems returns the items in display order.
func DefaultShopItems() []ShopItem {
	return []ShopItem{
		{
			Key:         "reduceCooldown",
			Name:        "Reduce Cooldown",
			Description: "Reduces bullet cooldown by 0.05 seconds",
			Cost:        200,
			Upgrade:     CooldownReduction,
			Limit:       0.25,
		},
		{
			Key:         "increaseBSpeed",
			Name:        "Increase Bullet Speed",
			Description: "Increases bullet speed by 0.05",
			Cost:        250,
			Upgrade:     BulletSpeedIncrease,
			Limit:       0.75,
		},
		{
			Key:         "increaseHealth",
			Name:        "Increase Health",
			Description: "Increases health by 1",
			Cost:        500,
			Upgrade:     HealthIncrease,
			Limit:       3,
		},
	}
}

const limitEpsilon = 1e-9

// Shop sells upgrades for score.
type Shop struct {
	items  []ShopItem
	state  *SessionState
	score  *Score
	health *Health
}

// NewShop creates a shop over the given items. The score and health counters
// are refreshed after every purchase.
func NewShop(items []ShopItem, state *SessionState, score *Score, health *Health) *Shop {
	return &Shop{items: items, state: state, score: score, health: health}
}

// Items returns the items in display order.
func (s *Shop) Items() []ShopItem {
	return s.items
}

// Item looks an item up by key.
func (s *Shop) Item(key string) (ShopItem, bool) {
	for _, it := range s.items {
		if it.Key == key {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Current returns the session value the item acts on.
func (s *Shop) Current(item ShopItem) float64 {
	return item.Upgrade.amount(s.state)
}

// IsMaxedOut reports whether the item has reached its limit. Cooldown is
// capped from below, everything else from above.
func (s *Shop) IsMaxedOut(item ShopItem) bool {
	cur := s.Current(item)
	if item.Upgrade.lowerIsBetter() {
		return cur <= item.Limit+limitEpsilon
	}
	return cur >= item.Limit-limitEpsilon
}

// CanAfford reports whether the score covers the item.
func (s *Shop) CanAfford(item ShopItem) bool {
	return s.state.Score >= item.Cost
}

// Purchase buys one step of the item named key. On error nothing changes.
func (s *Shop) Purchase(key string) (ShopItem, error) {
	item, ok := s.Item(key)
	if !ok {
		return ShopItem{}, fmt.Errorf("%w: %q", ErrUnknownItem, key)
	}
	if s.IsMaxedOut(item) {
		return item, fmt.Errorf("%s: %w", item.Name, ErrItemMaxed)
	}
	if !s.CanAfford(item) {
		return item, fmt.Errorf("%s costs %d, have %d: %w", item.Name, item.Cost, s.state.Score, ErrInsufficientFunds)
	}

	s.score.Decrease(item.Cost)
	ApplyUpgrade(s.state, item.Upgrade)
	s.health.Refresh()
	Debugf("purchased %s for %d", item.Name, item.Cost)
	return item, nil
}

// FormatAmount renders the current value of item for the shop screen.
func (s *Shop) FormatAmount(item ShopItem) string {
	cur := s.Current(item)
	if item.Upgrade == HealthIncrease {
		return fmt.Sprintf("%d", int(cur))
	}
	return fmt.Sprintf("%.2f", cur)
}
