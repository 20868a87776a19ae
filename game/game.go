package game

import (
	"fmt"

	"github.com/they4kman/xox/util/collections"
)

// Outcome is the result of a match so far. Winner and Line are set only when
// State is Won.
type Outcome struct {
	State  BoardState
	Winner Symbol
	Line   [size]Move
}

func (outcome Outcome) IsOver() bool {
	return outcome.State == Won || outcome.State == Draw
}

func (outcome Outcome) String() string {
	switch outcome.State {
	case Won:
		return fmt.Sprintf("%v wins", outcome.Winner)
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Game is a single match. It performs no locking; callers serialize access.
type Game struct {
	board         Board
	currentPlayer Symbol
	outcome       Outcome

	// Cells still free to play
	remaining collections.Set[Move]
}

func New() *Game {
	game := &Game{}
	game.Reset()
	return game
}

// Reset clears the board for a new match, Cross to move.
func (game *Game) Reset() {
	game.board = Board{}
	game.currentPlayer = Cross
	game.outcome = Outcome{State: Ongoing}
	game.remaining = make(collections.Set[Move], size*size)
	for row := uint(0); row < size; row++ {
		for col := uint(0); col < size; col++ {
			game.remaining.Add(Move{row, col})
		}
	}
}

func (game *Game) Board() Board {
	return game.board
}

func (game *Game) CellAt(row, col uint) Symbol {
	return game.board.CellAt(row, col)
}

func (game *Game) CurrentPlayer() Symbol {
	return game.currentPlayer
}

func (game *Game) Outcome() Outcome {
	return game.outcome
}

// PlayMove places the current player's symbol at (row, col), hands the turn
// to the other player and returns the resulting outcome. Rejected moves leave
// the game untouched.
func (game *Game) PlayMove(row, col uint) (Outcome, error) {
	move := Move{row, col}

	if game.outcome.IsOver() {
		return game.outcome, fmt.Errorf("%w: %v", ErrGameOver, game.outcome)
	}
	if !move.inBounds() {
		return game.outcome, fmt.Errorf("%w: %v", ErrInvalidLocation, move)
	}
	if !game.remaining.Contains(move) {
		return game.outcome, fmt.Errorf("%w: %v holds %v", ErrLocationNotEmpty, move, game.board.at(move))
	}

	game.board[row][col] = game.currentPlayer
	game.remaining.Remove(move)
	game.currentPlayer = game.nextPlayer()
	game.outcome = game.evaluate()

	return game.outcome, nil
}

func (game *Game) Apply(move Move) (Outcome, error) {
	return game.PlayMove(move.Row, move.Col)
}

func (game *Game) nextPlayer() Symbol {
	switch game.currentPlayer {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		// Unreachable: currentPlayer is only ever assigned Cross or Circle
		panic(fmt.Sprintf("cannot determine next player after %v", game.currentPlayer))
	}
}

func (game *Game) evaluate() Outcome {
	if winner, line := game.board.winner(); winner != Empty {
		return Outcome{State: Won, Winner: winner, Line: line}
	}
	if len(game.remaining) == 0 {
		return Outcome{State: Draw}
	}
	return Outcome{State: Ongoing}
}

func (game *Game) String() string {
	return fmt.Sprintf("%v\nNext move: %v", &game.board, game.currentPlayer)
}
