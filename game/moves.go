package game

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Hits returns every position reachable when the acting seat attacks:
// each of its non-zero fingers against each of the opponent's non-zero
// hands. The struck pair is re-canonicalized, the acting pair is
// untouched. Duplicates collapse to the first occurrence, so the order is
// stable.
func Hits(pos Position, player Player) []Position {
	own := pos.Hands[player]
	opp := pos.Hands[player.Opponent()]

	var hits []Position
	for _, fingers := range own {
		if fingers == 0 {
			continue
		}
		for target := 0; target < 2; target++ {
			if opp[target] == 0 {
				continue
			}
			struck := opp
			struck[target] = Hit(fingers, opp[target])
			hits = append(hits, pos.withHand(player.Opponent(), struck))
		}
	}
	return lo.Uniq(hits)
}

// Splits returns every position reachable when the acting seat
// redistributes its own fingers between its two hands. The total is
// conserved and both counts stay in range. A transfer that reproduces the
// current canonical pair is a no-op, not a move, and is excluded.
func Splits(pos Position, player Player) []Position {
	own := pos.Hands[player]

	var splits []Position
	for k := 1; k <= own[0]; k++ {
		if own[1]+k <= MaxFingers {
			splits = append(splits, pos.withHand(player, Hand{own[0] - k, own[1] + k}))
		}
	}
	for k := 1; k <= own[1]; k++ {
		if own[0]+k <= MaxFingers {
			splits = append(splits, pos.withHand(player, Hand{own[0] + k, own[1] - k}))
		}
	}
	return lo.Without(lo.Uniq(splits), pos.withHand(player, own))
}

// AvailableStates returns every legal successor for the acting seat: hit
// moves first, then splits, duplicate-free across the union and in a
// stable first-encounter order. Both hands of the input are canonicalized
// before generation. Asking for moves from a terminal position is a
// caller bug and fails with ErrTerminalState.
func AvailableStates(pos Position, player Player) ([]Position, error) {
	if !player.Valid() {
		return nil, errors.Wrapf(ErrInvalidPlayer, "player %d", player)
	}
	pos = pos.Canonical()
	if Evaluate(pos) != 0 {
		return nil, errors.Wrapf(ErrTerminalState, "no moves from %s", pos)
	}
	return lo.Uniq(append(Hits(pos, player), Splits(pos, player)...)), nil
}
