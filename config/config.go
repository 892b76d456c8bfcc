// Package config loads the YAML configuration shared by the CLI and the experiments.
package config

import (
	"errors"
	"fmt"
	"os"
	"prover/searcher"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoPositions  = errors.New("config lists no positions")
	ErrWorkers      = errors.New("workers must be at least 1")
	ErrUnknownGame  = errors.New("unknown game")
	ErrUnknownGoal  = errors.New("unknown proof goal")
	ErrBadIteration = errors.New("iterations must not be negative")
	ErrGames        = errors.New("games must not be negative")
)

const (
	GameTicTacToe = "tictactoe"
	GameNim       = "nim"
)

type Solver struct {
	Duration   time.Duration `yaml:"duration"`
	Iterations int           `yaml:"iterations"`
	Seed       uint64        `yaml:"seed"`
}

// Position describes a root state. Board is used by tictactoe, Stones and
// MaxTake by nim.
type Position struct {
	Game    string `yaml:"game"`
	Board   string `yaml:"board,omitempty"`
	Stones  int    `yaml:"stones,omitempty"`
	MaxTake int    `yaml:"max_take,omitempty"`
	Goal    string `yaml:"goal"`
}

func (p Position) String() string {
	if p.Game == GameNim {
		return fmt.Sprintf("%s:%d/%d:%s", p.Game, p.Stones, p.MaxTake, p.Goal)
	}
	return fmt.Sprintf("%s:%s:%s", p.Game, p.Board, p.Goal)
}

type Config struct {
	LogLevel  string     `yaml:"log_level"`
	OutputDir string     `yaml:"output_dir"`
	Compress  bool       `yaml:"compress"`
	Workers   int        `yaml:"workers"`
	Games     int        `yaml:"games"`
	Solver    Solver     `yaml:"solver"`
	Positions []Position `yaml:"positions"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		OutputDir: "experiments",
		Workers:   4,
		Games:     10,
		Solver: Solver{
			Duration: 10 * time.Second,
		},
		Positions: []Position{
			{Game: GameTicTacToe, Board: ".........", Goal: "win"},
			{Game: GameTicTacToe, Board: ".........", Goal: "loss"},
			{Game: GameNim, Stones: 12, MaxTake: 3, Goal: "win"},
			{Game: GameNim, Stones: 13, MaxTake: 3, Goal: "win"},
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrWorkers, c.Workers)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: %d", ErrGames, c.Games)
	}
	if c.Solver.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrBadIteration, c.Solver.Iterations)
	}
	if len(c.Positions) == 0 {
		return ErrNoPositions
	}
	for i, p := range c.Positions {
		switch p.Game {
		case GameTicTacToe, GameNim:
		default:
			return fmt.Errorf("%w: positions[%d].game = %q", ErrUnknownGame, i, p.Game)
		}
		if _, err := searcher.ParseGoal(p.Goal); err != nil {
			return fmt.Errorf("%w: positions[%d].goal: %w", ErrUnknownGoal, i, err)
		}
	}
	return nil
}
