package engine

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"chopsticks/game"
)

// Human reads moves from a prompt. A move is entered as the desired next
// position, either the four bare digits the console game has always taken
// ("1102") or the full wire form ("11|02"). Anything that does not parse
// to a legal successor is rejected and the prompt repeats.
type Human struct {
	ReadLine func() (string, error)
}

func (h *Human) FindBestState(pos game.Position, player game.Player) (game.Position, error) {
	children, err := game.AvailableStates(pos, player)
	if err != nil {
		return game.Position{}, err
	}

	for {
		line, err := h.ReadLine()
		if err != nil {
			return game.Position{}, errors.Wrap(err, "reading move")
		}
		next, err := parseEntry(line)
		if err != nil {
			log.Warn().Str("entry", line).Msg("could not read that move, try again")
			continue
		}
		if !lo.Contains(children, next) {
			log.Warn().Stringer("state", next).Msg("not a legal move from here, try again")
			continue
		}
		return next, nil
	}
}

func parseEntry(line string) (game.Position, error) {
	line = strings.TrimSpace(line)
	if len(line) == 4 && !strings.Contains(line, game.Separator) {
		line = line[:2] + game.Separator + line[2:]
	}
	pos, err := game.ParsePosition(line)
	if err != nil {
		return game.Position{}, err
	}
	return pos.Canonical(), nil
}
