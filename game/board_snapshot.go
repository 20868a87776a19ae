package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a YAML-serializable position: three rows of X, O and '.'.
type BoardSnapshot struct {
	SerializedBoard string `yaml:"board"`
	Outcome         string `yaml:"outcome,omitempty"`
}

func (game *Game) Snapshot() *BoardSnapshot {
	return &BoardSnapshot{
		SerializedBoard: game.board.String(),
		Outcome:         game.outcome.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateGame rebuilds a game from the snapshot's board. The mover and the
// outcome are derived from the position, which must be reachable by
// alternating play starting with Cross.
func (snapshot *BoardSnapshot) CreateGame() (*Game, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidSnapshot, size, len(rows))
	}

	game := New()
	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len([]rune(line)) != size {
			return nil, fmt.Errorf("%w: row %d is %q", ErrInvalidSnapshot, row, line)
		}

		for col, c := range []rune(line) {
			symbol, ok := deserializeSymbol(c)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at row %d", ErrInvalidSnapshot, c, row)
			}
			if symbol != Empty {
				game.board[row][col] = symbol
				game.remaining.Remove(Move{uint(row), uint(col)})
			}
		}
	}

	crosses, circles := game.board.count(Cross), game.board.count(Circle)
	switch crosses - circles {
	case 0:
		game.currentPlayer = Cross
	case 1:
		game.currentPlayer = Circle
	default:
		return nil, fmt.Errorf("%w: %d crosses and %d circles", ErrInvalidSnapshot, crosses, circles)
	}

	// Play stops at the first completed line, so only one side can have one
	if game.board.hasLine(Cross) && game.board.hasLine(Circle) {
		return nil, fmt.Errorf("%w: both %v and %v have a line", ErrInvalidSnapshot, Cross, Circle)
	}

	game.outcome = game.evaluate()

	// The winner must have made the last move
	if game.outcome.State == Won && game.outcome.Winner == game.currentPlayer {
		return nil, fmt.Errorf("%w: %v won but %v moved after", ErrInvalidSnapshot, game.outcome.Winner, game.nextPlayer())
	}

	return game, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
