// Command doordemo drives a lockable door through a scripted sequence of events
// and prints the state after each one.
//
// Configuration comes from the environment:
//
//	DOOR_KEY        key that locks and unlocks the door (default 123)
//	DOOR_SCRIPT     YAML script of events (default: built-in walk-through)
//	DOOR_STRATEGY   dispatch strategy: auto, probe or table (default auto)
//	DOOR_LOG_LEVEL  debug, info, warn or error (default warn)
//	DOOR_LAYOUT     optional .dot, .json or .yaml file receiving the final layout
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/comalice/tinyfsm"
	"github.com/comalice/tinyfsm/internal/door"
	"github.com/comalice/tinyfsm/visualize"
)

//go:embed default.yaml
var defaultScript []byte

var errBadStrategy = errors.New("unknown strategy")

type config struct {
	Key      uint   `env:"DOOR_KEY" envDefault:"123"`
	Script   string `env:"DOOR_SCRIPT"`
	Strategy string `env:"DOOR_STRATEGY" envDefault:"auto"`
	LogLevel string `env:"DOOR_LOG_LEVEL" envDefault:"warn"`
	Layout   string `env:"DOOR_LAYOUT"`
}

func (c config) strategy() (tinyfsm.Strategy, error) {
	switch strings.ToLower(c.Strategy) {
	case "", "auto":
		return tinyfsm.StrategyAuto, nil
	case "probe":
		return tinyfsm.StrategyProbe, nil
	case "table":
		return tinyfsm.StrategyTable, nil
	default:
		return 0, fmt.Errorf("%w: %q", errBadStrategy, c.Strategy)
	}
}

func (c config) level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}

func run(cfg config, stdout, stderr io.Writer) (*door.Door, error) {
	strategy, err := cfg.strategy()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.level()}))

	script, err := LoadScript(cfg.Script)
	if err != nil {
		return nil, err
	}

	d, err := door.New(cfg.Key, logger, tinyfsm.WithStrategy(strategy), tinyfsm.WithLogger(logger), tinyfsm.WithID("door"))
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(stdout, "start: %s\n", d.State())
	for i, st := range script.Steps {
		ev, err := st.Value()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		d.Send(ev)
		if st.Event == "lock" || st.Event == "unlock" {
			fmt.Fprintf(stdout, "%d: %s(%d) -> %s\n", i+1, st.Event, st.Key, d.State())
		} else {
			fmt.Fprintf(stdout, "%d: %s -> %s\n", i+1, st.Event, d.State())
		}
	}

	if cfg.Layout != "" {
		if err := visualize.WriteFile(cfg.Layout, d.Layout(), door.Edges()); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintln(os.Stderr, "doordemo:", err)
		os.Exit(2)
	}
	if _, err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "doordemo:", err)
		os.Exit(1)
	}
}
