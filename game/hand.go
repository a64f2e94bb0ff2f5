package game

import (
	"strconv"

	"github.com/pkg/errors"
)

// MaxFingers is the highest count a hand can hold; a hit that reaches
// five or more wraps the hand back to zero.
const MaxFingers = 4

// Hand is one player's pair of finger counts, each in [0, MaxFingers].
type Hand [2]int

// ParseHand decodes a two-digit hand string such as "02".
func ParseHand(s string) (Hand, error) {
	if len(s) != 2 {
		return Hand{}, errors.Wrapf(ErrInvalidPosition, "hand %q must be two digits", s)
	}
	var h Hand
	for i := 0; i < 2; i++ {
		d := int(s[i] - '0')
		if d < 0 || d > MaxFingers {
			return Hand{}, errors.Wrapf(ErrInvalidPosition, "finger count %q out of range in %q", string(s[i]), s)
		}
		h[i] = d
	}
	return h, nil
}

// Canonical sorts the pair ascending so mirrored hands compare equal.
// Idempotent.
func (h Hand) Canonical() Hand {
	if h[0] > h[1] {
		return Hand{h[1], h[0]}
	}
	return h
}

// Dead reports whether both fingers are down, eliminating the player.
func (h Hand) Dead() bool {
	return h == Hand{}
}

func (h Hand) String() string {
	return strconv.Itoa(h[0]) + strconv.Itoa(h[1])
}

// Hit returns the defender's finger count after an attack: the attacking
// and defending counts add, wrapping to zero at five or more.
func Hit(attacker, defender int) int {
	sum := attacker + defender
	if sum > MaxFingers {
		return 0
	}
	return sum
}
