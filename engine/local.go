package engine

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chopsticks/game"
)

// MaxTurns caps a game. Decayed scoring pushes the search toward quick
// wins, but two agents content to draw can shuffle fingers forever.
const MaxTurns = 120

// NoWinner is the Run result when the turn cap is reached first.
const NoWinner = game.Player(-1)

// Agent picks the successor position a seat moves to.
type Agent interface {
	FindBestState(pos game.Position, player game.Player) (game.Position, error)
}

// Local drives a full game between two in-process agents, one per seat.
type Local struct {
	State  game.Position
	Agents [2]Agent
}

// NewLocal sets up a game from the opening position.
func NewLocal(agents [2]Agent) *Local {
	return &Local{State: game.Start(), Agents: agents}
}

// Run alternates seats from the opening position until one is eliminated
// or MaxTurns plies have been played. It returns the winning seat
// (NoWinner at the cap) and the number of plies played.
func (l *Local) Run() (game.Player, int, error) {
	player := game.Player(0)
	for turn := 0; ; turn++ {
		if score := game.Evaluate(l.State); score != 0 {
			winner := game.Player(0)
			if score < 0 {
				winner = 1
			}
			log.Info().Stringer("state", l.State).Int("turns", turn).Int("winner", int(winner)).Msg("game over")
			return winner, turn, nil
		}
		if turn >= MaxTurns {
			log.Info().Stringer("state", l.State).Int("turns", turn).Msg("turn cap reached with no winner")
			return NoWinner, turn, nil
		}

		next, err := l.Agents[player].FindBestState(l.State, player)
		if err != nil {
			return NoWinner, turn, errors.Wrapf(err, "seat %d on turn %d", player, turn)
		}
		log.Debug().Int("player", int(player)).Stringer("state", l.State).Stringer("next", next).Int("turn", turn).Msg("move")
		l.State = next
		player = player.Opponent()
	}
}
