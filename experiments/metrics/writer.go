package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"amazons/game"

	"gopkg.in/yaml.v3"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID         int     `yaml:"id"`
	Kind       string  `yaml:"kind"` // "search" or "random"
	DepthBias  float64 `yaml:"depth_bias,omitempty"`
	RatioKept  int     `yaml:"ratio_kept,omitempty"`
	MaxDepth   int     `yaml:"max_depth,omitempty"`
	FixedDepth int     `yaml:"fixed_depth,omitempty"`
}

type GameRecord struct {
	Agent1 int // AgentConfig.ID playing as player1
	Agent2 int // AgentConfig.ID playing as player2
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

// Metadata is stored next to the records to make an experiment reproducible.
type Metadata struct {
	Name      string        `yaml:"name"`
	Shape     string        `yaml:"shape"`
	Size      uint          `yaml:"size"`
	Seed      uint64        `yaml:"seed"`
	Games     int           `yaml:"games_per_matchup"`
	MaxTurns  int           `yaml:"max_turns"`
	Agents    []AgentConfig `yaml:"agents"`
	MatchUps  [][2]int      `yaml:"matchups"`
	StartTime time.Time     `yaml:"start_time"`
	Summary   *Summary      `yaml:"summary,omitempty"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh directory named by the current timestamp under
// baseDir/name and writes every file there.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMetadata(meta Metadata) error {
	out, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "metadata.yaml"), out, 0644)
	if err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth_bias", "ratio_kept", "max_depth", "fixed_depth"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatFloat(config.DepthBias, 'f', -1, 64),
			strconv.Itoa(config.RatioKept),
			strconv.Itoa(config.MaxDepth),
			strconv.Itoa(config.FixedDepth),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "shape", "size", "starting_player", "winner", "winner_name",
		"forfeit", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Shape.String(),
			strconv.FormatUint(uint64(record.Size), 10),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.WinnerName,
			record.Forfeit,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "queen_src", "queen_dst", "arrow_dst", "hash",
		"depth", "duration", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player.String(),
			formatCell(record.Move.QueenSrc),
			formatCell(record.Move.QueenDst),
			formatCell(record.Move.ArrowDst),
			strconv.FormatUint(uint64(record.Hash), 16),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

// formatCell writes unset cells as an empty field.
func formatCell(pos uint) string {
	if pos == game.None {
		return ""
	}
	return strconv.FormatUint(uint64(pos), 10)
}
