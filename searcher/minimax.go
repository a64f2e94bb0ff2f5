package searcher

import "chopsticks/game"

// reuseThreshold guards cached-score reuse: only scores this far from
// zero (near-certain forced outcomes) short-circuit the recursion. A
// reused score may have been computed under a different search depth, so
// this trades a little exactness for pruning already-resolved subtrees.
const reuseThreshold = 50

// Extremum seeds that any attainable score beats.
const (
	belowAnyScore = -1000
	aboveAnyScore = 1000
)

type Option func(*Minimax)

// WithCache seeds the engine with a cache, typically restored from a
// snapshot. Passing the same cache to several engines shares it.
func WithCache(cache *Cache) Option {
	return func(m *Minimax) {
		if cache != nil {
			m.cache = cache
		}
	}
}

// Minimax is a depth-bounded exact search over chopsticks positions.
// Seat 0 maximizes the score, seat 1 minimizes it. Not safe for
// concurrent use; the cache has no locking.
type Minimax struct {
	maxDepth int
	cache    *Cache
}

// New returns an engine that searches maxDepth plies deep.
func New(maxDepth int, options ...Option) *Minimax {
	m := &Minimax{
		maxDepth: maxDepth,
		cache:    NewCache(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Cache exposes the engine's memo table.
func (m *Minimax) Cache() *Cache {
	return m.cache
}

// Search scores pos with toMove to act, assuming optimal play by both
// seats. Terminal positions score immediately. Past maxDepth a
// non-terminal position scores 0, so an unresolved deep branch reads as a
// draw rather than a true evaluation. Each child score decays by one
// point toward zero per ply, biasing play toward faster wins and slower
// losses, and is memoized under toMove, the seat whose move produced the
// child.
func (m *Minimax) Search(pos game.Position, depth int, toMove game.Player) int {
	if score := game.Evaluate(pos); score != 0 {
		return score
	}
	if depth > m.maxDepth {
		return 0
	}

	children, err := game.AvailableStates(pos, toMove)
	if err != nil {
		// Unreachable: pos was just checked to be non-terminal.
		panic(err)
	}

	best := belowAnyScore
	if toMove == 1 {
		best = aboveAnyScore
	}
	for _, child := range children {
		score, ok := m.cache.Lookup(toMove, child)
		if !ok || abs(score) <= reuseThreshold {
			score = decay(m.Search(child, depth+1, toMove.Opponent()))
		}
		m.cache.Store(toMove, child, score)
		if toMove == 0 {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// FindBestState picks the successor the acting seat should move to: the
// child with the extremal Search score for that seat, each child searched
// from depth 0 regardless of how many real plies have elapsed. Ties keep
// the first child encountered; AvailableStates enumerates in a stable
// order, so the pick is deterministic.
func (m *Minimax) FindBestState(pos game.Position, player game.Player) (game.Position, error) {
	children, err := game.AvailableStates(pos, player)
	if err != nil {
		return game.Position{}, err
	}

	bestScore := belowAnyScore
	if player == 1 {
		bestScore = aboveAnyScore
	}
	best := children[0]
	for _, child := range children {
		score := m.Search(child, 0, player.Opponent())
		if (player == 0 && score > bestScore) || (player == 1 && score < bestScore) {
			best = child
			bestScore = score
		}
	}
	return best, nil
}

func decay(score int) int {
	switch {
	case score > 0:
		return score - 1
	case score < 0:
		return score + 1
	default:
		return 0
	}
}

func abs(score int) int {
	if score < 0 {
		return -score
	}
	return score
}
