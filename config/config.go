package config

import "github.com/namsral/flag"

type Config struct {
	MaxDepth     int
	SnapshotPath string
	Mode         string
	HumanSeat    int
	Seed         uint64
	Debug        bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("chopsticks", flag.ContinueOnError)
	fs.IntVar(&c.MaxDepth, "max-depth", 12, "maximum minimax search depth in plies")
	fs.StringVar(&c.SnapshotPath, "snapshot-path", "possible_state_dict.json", "precomputed score snapshot to seed the cache")
	fs.StringVar(&c.Mode, "mode", "spectate", "spectate (AI vs AI), play (human vs AI), or sparring (AI vs random)")
	fs.IntVar(&c.HumanSeat, "human-seat", 0, "seat taken by the human in play mode; seat 0 moves first")
	fs.Uint64Var(&c.Seed, "seed", 1, "seed for the random sparring opponent")
	fs.BoolVar(&c.Debug, "debug", false, "log every move at debug level")
	return fs.Parse(args)
}
