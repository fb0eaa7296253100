package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files in a timestamped
// directory under experiments/<name>/.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir is where this writer puts its files.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return w.writeCSV("agent_configs.csv",
		[]string{"id", "strategy", "depth"},
		len(configs),
		func(i int) []string {
			config := configs[i]
			return []string{
				strconv.Itoa(config.ID),
				config.Strategy,
				strconv.Itoa(config.Depth),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "agent1", "agent2", "bowls", "stones", "moves", "red_score", "start_time", "end_time", "duration"},
		len(records),
		func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.ID),
				strconv.Itoa(record.Agent1),
				strconv.Itoa(record.Agent2),
				strconv.Itoa(record.Bowls),
				strconv.Itoa(record.Stones),
				strconv.Itoa(record.Moves),
				strconv.Itoa(record.RedScore),
				record.StartTime.Format(time.RFC3339),
				record.EndTime.Format(time.RFC3339),
				record.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("move_records.csv",
		[]string{"game", "step", "player", "bowl", "nodes", "max_depth", "elapsed"},
		len(records),
		func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.Game),
				strconv.Itoa(record.Step),
				record.Player,
				strconv.Itoa(record.Bowl),
				strconv.Itoa(record.Nodes),
				strconv.Itoa(record.MaxDepth),
				record.Elapsed.String(),
			}
		})
}

func (w *Writer) writeCSV(file string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}
	return writer.Error()
}
