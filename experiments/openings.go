package experiments

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"chinesecheckers/game"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog/log"
)

// GenerateOpenings walks the game tree from g, which must have Player0 to
// move. At each Player0 turn the searcher's reply is booked under the
// position's fingerprint key, then every Player1 answer is explored, for
// plies Player0 turns. g is restored before returning.
func GenerateOpenings(g *game.Game, s *searcher.AlphaBeta, plies int) searcher.Book {
	book := searcher.Book{}
	generateOpenings(g, s, plies, book)
	return book
}

func generateOpenings(g *game.Game, s *searcher.AlphaBeta, plies int, book searcher.Book) {
	if plies == 0 || g.StateOfGame() != game.NotFinished {
		return
	}

	move, _, _ := s.Search(g)
	if move == nil {
		return
	}
	key := g.Fingerprint().Key()
	if _, ok := book[key]; !ok {
		book[key] = move
		if len(book)%100 == 0 {
			log.Info().Msgf("%d openings booked", len(book))
		}
	}
	g.Play(move)
	defer g.Unplay(move)

	if g.StateOfGame() != game.NotFinished {
		return
	}
	for _, reply := range g.AvailableMoves() {
		g.Play(reply)
		generateOpenings(g, s, plies-1, book)
		g.Unplay(reply)
	}
}

// SaveBook writes one line per entry, "<key> r0 c0 r1 c1 ...", sorted by
// key.
func SaveBook(book searcher.Book, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	defer f.Close()

	keys := make([]uint64, 0, len(book))
	for k := range book {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	w := bufio.NewWriter(f)
	for _, k := range keys {
		fields := []string{strconv.FormatUint(k, 10)}
		for _, v := range book[k].Flatten() {
			fields = append(fields, strconv.Itoa(v))
		}
		if _, err := w.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return fmt.Errorf("failed to write book: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write book: %w", err)
	}
	return nil
}

// LoadBook reads a book written by SaveBook. Malformed lines are skipped.
func LoadBook(path string) (searcher.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open book: %w", err)
	}
	defer f.Close()

	book := searcher.Book{}
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		key, move, err := parseBookLine(scanner.Text())
		if err != nil {
			log.Warn().Msgf("skipping book line %d: %v", line, err)
			continue
		}
		book[key] = move
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book: %w", err)
	}
	return book, nil
}

func parseBookLine(line string) (uint64, game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return 0, nil, fmt.Errorf("expected a key and at least two cells, got %q", line)
	}
	key, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid key: %w", err)
	}
	values := make([]int, len(fields)-1)
	for i, field := range fields[1:] {
		if values[i], err = strconv.Atoi(field); err != nil {
			return 0, nil, fmt.Errorf("invalid coordinate %q", field)
		}
	}
	move, err := game.MoveFromPairs(values)
	if err != nil {
		return 0, nil, err
	}
	return key, move, nil
}
