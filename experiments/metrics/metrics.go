// Package metrics holds the measurement records produced by experiments
// and their CSV persistence.
package metrics

import "time"

// AgentConfig describes a configured strategy taking part in a matchup.
// Depth 0 means unbounded.
type AgentConfig struct {
	ID       int
	Strategy string
	Depth    int
}

// SearchMetric captures the work of a single move search.
type SearchMetric struct {
	Nodes    int
	MaxDepth int
	Elapsed  time.Duration
}

// MoveMetric ties a search measurement to its ply.
type MoveMetric struct {
	Step   int
	Player string
	Bowl   int
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	Bowls     int
	Stones    int
	Moves     int
	RedScore  int // final score from Red's perspective
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// GameRecord is a GameMetric attributed to the two agents that produced it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing Red
	Agent2 int // AgentConfig.ID, playing Blue
	GameMetric
}

// MoveRecord is a MoveMetric attributed to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
