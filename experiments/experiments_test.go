package experiments

import (
	"testing"

	"mancala/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestNewAgentRejectsUnknownStrategy(t *testing.T) {
	_, err := newAgent(metrics.AgentConfig{Strategy: "oracle"})

	require.Error(t, err)
}

func TestRunGameProducesRecords(t *testing.T) {
	m := matchup{
		first:  metrics.AgentConfig{ID: 1, Strategy: "alphabeta", Depth: 4},
		second: metrics.AgentConfig{ID: 2, Strategy: "minmax"},
	}

	record, moves, err := runGame(7, m, board{bowls: 2, stones: 2})

	require.NoError(t, err)
	require.Equal(t, 7, record.ID)
	require.Equal(t, 1, record.Agent1)
	require.Equal(t, 2, record.Agent2)
	require.Equal(t, len(moves), record.Moves)
	require.NotEmpty(t, moves)
	for _, move := range moves {
		require.Equal(t, 7, move.Game)
		require.Positive(t, move.Nodes, "every search visits at least the root")
	}
}
