package searcher

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chopsticks/game"
)

// Cache memoizes minimax scores. It keeps one table per mover: a score is
// filed under the seat whose move produced the position, which is how the
// external snapshot format partitions its entries. Plain maps with no
// locking: the search is single-threaded, the set of reachable canonical
// positions is small, and entries are overwritten, never evicted. Nothing
// ever writes the cache back to disk.
type Cache struct {
	scores [2]map[game.Position]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{scores: [2]map[game.Position]int{{}, {}}}
}

// Lookup returns the memoized score for a position produced by mover.
func (c *Cache) Lookup(mover game.Player, pos game.Position) (int, bool) {
	score, ok := c.scores[mover][pos]
	return score, ok
}

// Store files a score under the mover that produced the position. Last
// write wins.
func (c *Cache) Store(mover game.Player, pos game.Position, score int) {
	c.scores[mover][pos] = score
}

// Len counts memoized positions across both movers.
func (c *Cache) Len() int {
	return len(c.scores[0]) + len(c.scores[1])
}

// LoadSnapshot reads a precomputed score table: JSON mapping each mover
// ("0" or "1") to canonical wire positions and their scores, e.g.
// {"0": {"11|12": 97}, "1": {}}.
func LoadSnapshot(r io.Reader) (*Cache, error) {
	var snapshot map[string]map[string]int
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding score snapshot")
	}

	cache := NewCache()
	for seat, entries := range snapshot {
		mover, err := strconv.Atoi(seat)
		if err != nil || !game.Player(mover).Valid() {
			return nil, errors.Wrapf(game.ErrInvalidPlayer, "snapshot mover %q", seat)
		}
		for key, score := range entries {
			pos, err := game.ParsePosition(key)
			if err != nil {
				return nil, errors.Wrapf(err, "snapshot entry for mover %s", seat)
			}
			cache.scores[mover][pos.Canonical()] = score
		}
	}
	return cache, nil
}

// LoadSnapshotFile restores a snapshot from disk. A missing file is not
// an error: the search simply starts from an empty cache.
func LoadSnapshotFile(path string) (*Cache, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("no score snapshot found, starting with an empty cache")
			return NewCache(), nil
		}
		return nil, errors.Wrapf(err, "opening score snapshot %s", path)
	}
	defer file.Close()

	cache, err := LoadSnapshot(file)
	if err != nil {
		return nil, errors.Wrapf(err, "score snapshot %s", path)
	}
	log.Info().Str("path", path).Int("entries", cache.Len()).Msg("restored score snapshot")
	return cache, nil
}
