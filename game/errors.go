package game

import "errors"

var (
	// ErrInsufficientFunds is returned by a purchase the score cannot cover.
	ErrInsufficientFunds = errors.New("not enough score")

	// ErrItemMaxed is returned by a purchase of an item already at its limit.
	ErrItemMaxed = errors.New("item is maxed out")

	ErrUnknownItem = errors.New("unknown shop item")

	// ErrNoSavedGame is returned when continuing without a stored session.
	ErrNoSavedGame = errors.New("no saved game")

	ErrInvalidTransition = errors.New("invalid menu transition")
)
