package script

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/xox/director"
	"github.com/they4kman/xox/game"
)

// Director replays a fixed list of moves, one per Act.
type Director struct {
	Moves    []game.Move
	Interval time.Duration
	Log      logrus.FieldLogger

	sink director.MoveSink
	next int

	act     chan chan struct{}
	done    chan struct{}
	ticking sync.WaitGroup
}

func New(moves []game.Move, interval time.Duration, log logrus.FieldLogger) *Director {
	return &Director{
		Moves:    moves,
		Interval: interval,
		Log:      log,
	}
}

func (director *Director) Init(sink director.MoveSink) {
	director.sink = sink
	director.next = 0
	director.act = make(chan chan struct{})
	director.done = make(chan struct{})

	if director.Log == nil {
		director.Log = logrus.StandardLogger()
	}

	go func() {
		for acted := range director.act {
			director.submitNext()
			close(acted)
		}
	}()
}

func (director *Director) submitNext() {
	if director.next >= len(director.Moves) {
		return
	}

	move := director.Moves[director.next]
	director.next++

	director.Log.WithFields(logrus.Fields{
		"move":      move,
		"remaining": len(director.Moves) - director.next,
	}).Debug("submitting scripted move")
	director.sink.Submit(move)
}

// Act submits the next scripted move and returns once it is in the sink.
func (director *Director) Act() {
	acted := make(chan struct{})
	director.act <- acted
	<-acted
}

func (director *Director) ActContinuously() {
	interval := director.Interval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	director.ticking.Add(1)
	go func() {
		defer director.ticking.Done()

		tick := time.NewTicker(interval)
		defer tick.Stop()

		for {
			select {
			case <-director.done:
				return
			case <-tick.C:
				director.Act()
			}
		}
	}()
}

func (director *Director) End() {
	close(director.done)
	director.ticking.Wait()
	close(director.act)
}

// ParseMoves reads moves written as "row:col", separated by commas or spaces,
// e.g. "1:1, 0:0,2:2".
func ParseMoves(in string) ([]game.Move, error) {
	fields := strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	moves := make([]game.Move, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid move %q: want row:col", field)
		}

		row, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid row in move %q: %w", field, err)
		}
		col, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid column in move %q: %w", field, err)
		}

		moves = append(moves, game.Move{Row: uint(row), Col: uint(col)})
	}
	return moves, nil
}
