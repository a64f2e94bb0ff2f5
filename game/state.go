package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Separator joins the two hand pairs in the wire format, e.g. "11|11".
const Separator = "|"

// Position is the full game state: one hand pair per seat. It is a small
// comparable value so it can key maps and compare cheaply; the wire
// string exists only at the boundary.
type Position struct {
	Hands [2]Hand
}

// Start is the opening position, one finger up on every hand.
func Start() Position {
	return Position{Hands: [2]Hand{{1, 1}, {1, 1}}}
}

// ParsePosition decodes a wire position such as "11|02".
func ParsePosition(s string) (Position, error) {
	left, right, ok := strings.Cut(s, Separator)
	if !ok {
		return Position{}, errors.Wrapf(ErrInvalidPosition, "%q has no separator", s)
	}
	h0, err := ParseHand(left)
	if err != nil {
		return Position{}, errors.Wrapf(err, "position %q", s)
	}
	h1, err := ParseHand(right)
	if err != nil {
		return Position{}, errors.Wrapf(err, "position %q", s)
	}
	return Position{Hands: [2]Hand{h0, h1}}, nil
}

// MustParsePosition is ParsePosition for literals known to be well formed.
func MustParsePosition(s string) Position {
	pos, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return pos
}

// Canonical canonicalizes both hand pairs.
func (p Position) Canonical() Position {
	return Position{Hands: [2]Hand{p.Hands[0].Canonical(), p.Hands[1].Canonical()}}
}

// String renders the wire form. Hands are rendered as stored; canonicalize
// first when the canonical wire string is required.
func (p Position) String() string {
	return p.Hands[0].String() + Separator + p.Hands[1].String()
}

// withHand returns a copy of p with one seat's pair replaced and
// canonicalized.
func (p Position) withHand(seat Player, h Hand) Position {
	p.Hands[seat] = h.Canonical()
	return p
}
