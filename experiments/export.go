package experiments

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"chinesecheckers/game"
	"chinesecheckers/meta"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ExportFormatVersion tags boards.dat and values.dat. A board line holds the
// 64 cells in row-major order as 0 (empty), 1 (Player0) or 2 (Player1); the
// matching values line holds the score and the search depth behind it.
const ExportFormatVersion = 1

const (
	boardsFile  = "boards.dat"
	valuesFile  = "values.dat"
	versionFile = "FORMAT"
)

type ExportConfig struct {
	Games               int
	Depth               int
	MaxMoves            int
	BestMoveProbability float64
	Seed                uint64
	Dir                 string
	Rules               []game.Option
}

func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Games:               500,
		Depth:               1,
		MaxMoves:            meta.MAX_MOVES,
		BestMoveProbability: 0.8,
		Seed:                1,
		Dir:                 "raw_data",
	}
}

type LookupEntry struct {
	Score float64
	Depth int
}

// Lookup holds exported evaluations by position.
type Lookup map[game.Fingerprint]LookupEntry

// Exporter records the evaluation of every position reachable in one move
// during self-play. Positions already present in the output are skipped, so
// repeated runs only append new data.
type Exporter struct {
	config   ExportConfig
	rng      *rand.Rand
	searcher *searcher.AlphaBeta
	lookup   Lookup
}

func NewExporter(config ExportConfig) (*Exporter, error) {
	if config.Depth < 1 {
		return nil, fmt.Errorf("export depth must be positive, got %d", config.Depth)
	}
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	lookup, err := LoadLookup(config.Dir)
	if err != nil {
		return nil, err
	}
	if err := writeVersion(config.Dir); err != nil {
		return nil, err
	}
	return &Exporter{
		config:   config,
		rng:      rand.New(rand.NewSource(config.Seed)),
		searcher: searcher.NewAlphaBeta(searcher.WithDepth(config.Depth)),
		lookup:   lookup,
	}, nil
}

func (x *Exporter) Lookup() Lookup {
	return x.lookup
}

// Run plays the configured number of games and returns how many positions
// were appended.
func (x *Exporter) Run() (int, error) {
	boards, err := os.OpenFile(filepath.Join(x.config.Dir, boardsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open boards: %w", err)
	}
	defer boards.Close()
	values, err := os.OpenFile(filepath.Join(x.config.Dir, valuesFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open values: %w", err)
	}
	defer values.Close()

	bw, vw := bufio.NewWriter(boards), bufio.NewWriter(values)
	written := 0
	for i := 0; i < x.config.Games; i++ {
		n, err := x.playGame(bw, vw)
		written += n
		if err != nil {
			return written, err
		}
		if err := bw.Flush(); err != nil {
			return written, fmt.Errorf("failed to write boards: %w", err)
		}
		if err := vw.Flush(); err != nil {
			return written, fmt.Errorf("failed to write values: %w", err)
		}
		log.Info().Msgf("exported game %d of %d, %d positions known", i+1, x.config.Games, len(x.lookup))
	}
	return written, nil
}

func (x *Exporter) playGame(boards, values *bufio.Writer) (int, error) {
	g := game.NewGame(x.config.Rules...)
	written := 0
	for ply := 0; g.StateOfGame() == game.NotFinished && ply < x.config.MaxMoves; ply++ {
		moves := g.AvailableMoves()
		if len(moves) == 0 {
			break
		}
		n, err := x.evaluateMoves(g, moves, boards, values)
		written += n
		if err != nil {
			return written, err
		}

		move := moves[x.rng.Intn(len(moves))]
		if x.rng.Float64() < x.config.BestMoveProbability {
			move, _ = x.searcher.BestMove(g, x.config.Depth, searcher.MinusInfinity, searcher.PlusInfinity)
		}
		g.Play(move)
	}
	return written, nil
}

// evaluateMoves scores the position after each move from the mover's side.
func (x *Exporter) evaluateMoves(g *game.Game, moves []game.Move, boards, values *bufio.Writer) (int, error) {
	mover := g.Turn()
	written := 0
	for _, m := range moves {
		g.Play(m)
		f := g.Fingerprint()
		if _, known := x.lookup[f]; !known {
			score := x.searcher.Value(g, mover, x.config.Depth-1, searcher.MinusInfinity, searcher.PlusInfinity)
			x.lookup[f] = LookupEntry{Score: score, Depth: x.config.Depth}
			if err := writeBoard(boards, g.Board().Flatten()); err != nil {
				g.Unplay(m)
				return written, err
			}
			if _, err := fmt.Fprintf(values, "%s %d\n", strconv.FormatFloat(score, 'g', -1, 64), x.config.Depth); err != nil {
				g.Unplay(m)
				return written, fmt.Errorf("failed to write value: %w", err)
			}
			written++
		}
		g.Unplay(m)
	}
	return written, nil
}

func writeBoard(w *bufio.Writer, cells [game.Size * game.Size]game.Cell) error {
	fields := make([]string, len(cells))
	for i, c := range cells {
		fields[i] = strconv.Itoa(int(c))
	}
	if _, err := w.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}
	return nil
}

func writeVersion(dir string) error {
	path := filepath.Join(dir, versionFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(ExportFormatVersion)+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write format version: %w", err)
	}
	return nil
}

// LoadLookup reads the exported positions of dir. A directory without data
// yields an empty lookup.
func LoadLookup(dir string) (Lookup, error) {
	lookup := Lookup{}
	if data, err := os.ReadFile(filepath.Join(dir, versionFile)); err == nil {
		if v := strings.TrimSpace(string(data)); v != strconv.Itoa(ExportFormatVersion) {
			return nil, fmt.Errorf("unsupported export format version %q", v)
		}
	}

	boards, err := os.Open(filepath.Join(dir, boardsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return lookup, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open boards: %w", err)
	}
	defer boards.Close()
	values, err := os.Open(filepath.Join(dir, valuesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open values: %w", err)
	}
	defer values.Close()

	bs, vs := bufio.NewScanner(boards), bufio.NewScanner(values)
	for line := 1; bs.Scan(); line++ {
		if !vs.Scan() {
			return nil, fmt.Errorf("values end before board line %d", line)
		}
		f, err := parseBoard(bs.Text())
		if err != nil {
			return nil, fmt.Errorf("board line %d: %w", line, err)
		}
		entry, err := parseValue(vs.Text())
		if err != nil {
			return nil, fmt.Errorf("value line %d: %w", line, err)
		}
		lookup[f] = entry
	}
	if err := bs.Err(); err != nil {
		return nil, fmt.Errorf("failed to read boards: %w", err)
	}
	if err := vs.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	return lookup, nil
}

func parseBoard(line string) (game.Fingerprint, error) {
	fields := strings.Fields(line)
	var cells [game.Size * game.Size]game.Cell
	if len(fields) != len(cells) {
		return game.Fingerprint{}, fmt.Errorf("expected %d cells, got %d", len(cells), len(fields))
	}
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil || v < 0 || v > int(game.OwnedByPlayer1) {
			return game.Fingerprint{}, fmt.Errorf("invalid cell %q", field)
		}
		cells[i] = game.Cell(v)
	}
	return game.FingerprintOf(cells), nil
}

func parseValue(line string) (LookupEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return LookupEntry{}, fmt.Errorf("expected score and depth, got %q", line)
	}
	score, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return LookupEntry{}, fmt.Errorf("invalid score: %w", err)
	}
	depth, err := strconv.Atoi(fields[1])
	if err != nil {
		return LookupEntry{}, fmt.Errorf("invalid depth: %w", err)
	}
	return LookupEntry{Score: score, Depth: depth}, nil
}
