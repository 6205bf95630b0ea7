package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// GenerationRecord summarises one tuner generation: the best score so far,
// the score at every tenth of the sorted population and the worst score.
type GenerationRecord struct {
	Generation int
	Player     int // game.Player evolving
	Best       float64
	Deciles    [10]float64
	Worst      float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named after the experiment and the
// current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Workers),
			strconv.FormatBool(config.Table),
			strconv.FormatBool(config.Random),
		})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "depth", "workers", "table", "random"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			record.Result,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_player", "result", "start_time", "end_time", "duration", "total_moves"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.TTHits),
			strconv.Itoa(record.BookHits),
		})
	}
	header := []string{"game", "step", "player", "workers", "depth", "duration", "nodes", "cutoffs", "tt_hits", "book_hits"}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteGenerationRecords(records []GenerationRecord) error {
	rows := [][]string{}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Generation),
			strconv.Itoa(record.Player),
			formatScore(record.Best),
		}
		for _, d := range record.Deciles {
			row = append(row, formatScore(d))
		}
		rows = append(rows, append(row, formatScore(record.Worst)))
	}
	header := []string{"generation", "player", "best"}
	for i := 0; i < 10; i++ {
		header = append(header, fmt.Sprintf("decile_%d", i))
	}
	return w.writeCSV("generations.csv", append(header, "worst"), rows)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
