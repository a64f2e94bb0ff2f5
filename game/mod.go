package game

import "github.com/pkg/errors"

// Player identifies a seat. Seat 0 moves first and maximizes the score,
// seat 1 minimizes it.
type Player int

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	return 1 - p
}

// Valid reports whether p names one of the two seats.
func (p Player) Valid() bool {
	return p == 0 || p == 1
}

var (
	// ErrTerminalState is returned when successors are requested for a
	// position that already has a winner.
	ErrTerminalState = errors.New("position is terminal")

	// ErrInvalidPosition is returned for wire strings that do not encode
	// two in-range hand pairs.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidPlayer is returned for player identifiers outside {0, 1}.
	ErrInvalidPlayer = errors.New("invalid player")
)
