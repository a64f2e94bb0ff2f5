package main

import (
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chopsticks/config"
	"chopsticks/engine"
	"chopsticks/game"
	"chopsticks/searcher"
)

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cache, err := searcher.LoadSnapshotFile(cfg.SnapshotPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading score snapshot")
	}
	ai := searcher.New(cfg.MaxDepth, searcher.WithCache(cache))

	switch cfg.Mode {
	case "spectate":
		report(engine.NewLocal([2]engine.Agent{ai, ai}).Run())
	case "sparring":
		report(engine.NewLocal([2]engine.Agent{ai, searcher.NewRandom(cfg.Seed)}).Run())
	case "play":
		play(ai, game.Player(cfg.HumanSeat))
	default:
		log.Fatal().Str("mode", cfg.Mode).Msg("unknown mode")
	}
}

func play(ai *searcher.Minimax, seat game.Player) {
	if !seat.Valid() {
		log.Fatal().Int("seat", int(seat)).Msg("human seat must be 0 or 1")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:    "chopsticks> ",
		EOFPrompt: "exit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("opening prompt")
	}
	defer l.Close()

	human := &engine.Human{ReadLine: func() (string, error) {
		line, err := l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return line, err
	}}

	agents := [2]engine.Agent{human, ai}
	if seat == 1 {
		agents = [2]engine.Agent{ai, human}
	}

	winner, turns, err := engine.NewLocal(agents).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	switch winner {
	case seat:
		log.Info().Int("turns", turns).Msg("you won")
	case engine.NoWinner:
		log.Info().Int("turns", turns).Msg("no winner")
	default:
		log.Info().Int("turns", turns).Msg("the AI won")
	}
}

func report(winner game.Player, turns int, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == engine.NoWinner {
		log.Info().Int("turns", turns).Msg("no winner within the turn cap")
		return
	}
	log.Info().Int("winner", int(winner)).Int("turns", turns).Msg("finished")
}
