package searcher

import (
	"golang.org/x/exp/rand"

	"chopsticks/game"
)

// Random plays a uniformly random legal move. It is the baseline sparring
// opponent: any search worth keeping should not lose to it.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent seeded for reproducible games.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindBestState(pos game.Position, player game.Player) (game.Position, error) {
	children, err := game.AvailableStates(pos, player)
	if err != nil {
		return game.Position{}, err
	}
	return children[r.rng.Intn(len(children))], nil
}
