// Package experiments pits configured strategies against each other over a
// range of boards and records game and per-move search telemetry as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
	"mancala/strategy"
)

// agent is a configured strategy together with access to its search
// telemetry.
type agent struct {
	play     strategy.Strategy
	analyzer func() searcher.Analyzer
}

func newAgent(config metrics.AgentConfig) (agent, error) {
	depth := searcher.Infinite()
	if config.Depth > 0 {
		depth = searcher.Limit(config.Depth)
	}
	switch config.Strategy {
	case "minmax":
		m := searcher.NewMinMax()
		return agent{play: m, analyzer: m.Analyzer}, nil
	case "alphabeta":
		ab := searcher.NewAlphaBeta(searcher.WithDepth(depth))
		return agent{play: ab, analyzer: ab.Analyzer}, nil
	default:
		return agent{}, fmt.Errorf("unknown strategy %q", config.Strategy)
	}
}

// RunPruningExperiment plays exhaustive search against pruned search over
// growing boards; the move records expose how many fewer nodes the pruned
// search visits for the same decisions.
func RunPruningExperiment() error {
	minmax := metrics.AgentConfig{ID: 1, Strategy: "minmax"}
	alphabeta := metrics.AgentConfig{ID: 2, Strategy: "alphabeta"}

	var boards []board
	for bowls := 1; bowls <= 3; bowls++ {
		for stones := 1; stones <= 3; stones++ {
			boards = append(boards, board{bowls: bowls, stones: stones})
		}
	}

	return runExperiment("pruning",
		[]metrics.AgentConfig{minmax, alphabeta},
		[]matchup{{first: minmax, second: alphabeta}},
		boards)
}

// RunDepthExperiment pits a depth ladder of alpha-beta agents against a
// fixed-depth baseline to relate search depth to playing strength.
func RunDepthExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, Strategy: "alphabeta", Depth: 5}
	ladder := []metrics.AgentConfig{
		{ID: 1, Strategy: "alphabeta", Depth: 1},
		{ID: 2, Strategy: "alphabeta", Depth: 3},
		{ID: 3, Strategy: "alphabeta", Depth: 5},
		{ID: 4, Strategy: "alphabeta", Depth: 7},
		{ID: 5, Strategy: "alphabeta", Depth: 9},
	}

	matchups := make([]matchup, 0, len(ladder))
	for _, config := range ladder {
		matchups = append(matchups, matchup{first: baseline, second: config})
	}

	var boards []board
	for stones := 1; stones <= 8; stones++ {
		boards = append(boards, board{bowls: 2, stones: stones})
	}

	return runExperiment("depth", append(ladder, baseline), matchups, boards)
}

type matchup struct {
	first  metrics.AgentConfig // plays Red
	second metrics.AgentConfig // plays Blue
}

type board struct {
	bowls  int
	stones int
}

func runExperiment(name string, configs []metrics.AgentConfig, matchups []matchup, boards []board) error {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between agent%d and agent%d...",
			mi+1, len(matchups), matchup.first.ID, matchup.second.ID)

		for _, board := range boards {
			count++
			gameRecord, games, err := runGame(count, matchup, board)
			if err != nil {
				return fmt.Errorf("matchup %d on %d-bowl %d-stone board: %w", mi+1, board.bowls, board.stones, err)
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, games...)

			log.Info().Msgf("completed game %d: %d moves, red score %d",
				count, gameRecord.Moves, gameRecord.RedScore)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %s records under %s", name, writer.BaseDir())
	return nil
}

// runGame drives a single game move by move, measuring each search.
func runGame(id int, matchup matchup, board board) (metrics.GameRecord, []metrics.MoveRecord, error) {
	red, err := newAgent(matchup.first)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	blue, err := newAgent(matchup.second)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	g := game.NewGameBuilder().Bowls(board.bowls).Stones(board.stones).Build()
	start := time.Now()

	var moves []metrics.MoveRecord
	for step := 1; !g.Finished(); step++ {
		mover := g.Turn()
		current := red
		if mover == game.Blue {
			current = blue
		}

		searchStart := time.Now()
		bowl, ok := current.play.Play(g.Current())
		elapsed := time.Since(searchStart)
		if !ok {
			return metrics.GameRecord{}, nil, fmt.Errorf("%s offered no play", mover)
		}
		if err := g.Play(bowl); err != nil {
			return metrics.GameRecord{}, nil, fmt.Errorf("%s played bowl %d: %w", mover, bowl, err)
		}

		analyzer := current.analyzer()
		moves = append(moves, metrics.MoveRecord{
			Game: id,
			MoveMetric: metrics.MoveMetric{
				Step:   step,
				Player: mover.String(),
				Bowl:   int(bowl),
				SearchMetric: metrics.SearchMetric{
					Nodes:    analyzer.Nodes(),
					MaxDepth: analyzer.MaxDepth(),
					Elapsed:  elapsed,
				},
			},
		})
	}
	end := time.Now()

	score, _ := g.Score()
	redScore := int(score)
	if g.Turn() != game.Red {
		redScore = -redScore
	}

	record := metrics.GameRecord{
		ID:     id,
		Agent1: matchup.first.ID,
		Agent2: matchup.second.ID,
		GameMetric: metrics.GameMetric{
			Bowls:     board.bowls,
			Stones:    board.stones,
			Moves:     len(moves),
			RedScore:  redScore,
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
		},
	}
	return record, moves, nil
}
