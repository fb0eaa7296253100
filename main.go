// Battle pits two strategies against each other in a game of Mancala and
// prints the final score from Red's point of view.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mancala/bout"
	"mancala/config"
	"mancala/experiments"
	"mancala/game"
	"mancala/searcher"
	"mancala/strategy"
)

func main() {
	cfgPath := flag.String("config", "", "path to a config file; settings also come from MANCALA_* env vars")
	experiment := flag.String("experiment", "", "run an experiment instead of a battle: pruning or depth")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	switch *experiment {
	case "":
		// Fall through to the battle below.
	case "pruning":
		if err := experiments.RunPruningExperiment(); err != nil {
			log.Fatal().Err(err).Msg("pruning experiment failed")
		}
		return
	case "depth":
		if err := experiments.RunDepthExperiment(); err != nil {
			log.Fatal().Err(err).Msg("depth experiment failed")
		}
		return
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log.Info().Msgf("loaded config: %+v", cfg)

	red, err := strategyFromName(cfg.Red, cfg.Depth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build red strategy")
	}
	blue, err := strategyFromName(cfg.Blue, cfg.Depth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build blue strategy")
	}

	g := game.NewGameBuilder().Bowls(cfg.Bowls).Stones(cfg.Stones).Build()
	b := bout.New(red, blue)
	if err := b.Start(g); err != nil {
		log.Fatal().Err(err).Msg("bout did not finish")
	}

	score, _ := g.Score()
	if g.Turn() != game.Red {
		score = -score
	}
	fmt.Printf("%s\nred finished at %+d after %d plays\n", g.Current(), score, len(g.History()))
}

func strategyFromName(name string, depth int) (strategy.Strategy, error) {
	limit := searcher.Infinite()
	if depth > 0 {
		limit = searcher.Limit(depth)
	}
	switch name {
	case "user":
		return strategy.NewUser(os.Stdin, os.Stdout), nil
	case "first":
		return strategy.NewFirst(), nil
	case "random":
		return strategy.NewRandom(), nil
	case "minmax":
		return searcher.NewMinMax(), nil
	case "alphabeta":
		return searcher.NewAlphaBeta(searcher.WithDepth(limit)), nil
	case "ids":
		return searcher.NewIterativeDeepening(limit, nil), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
