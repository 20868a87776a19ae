package director

import (
	"sync"

	"github.com/gammazero/deque"
	"github.com/they4kman/xox/game"
)

// Queue collects move requests from any goroutine so the single owner of a
// game.Game can apply them in arrival order.
type Queue struct {
	lock  sync.Mutex
	moves deque.Deque
}

func (queue *Queue) Submit(move game.Move) {
	queue.lock.Lock()
	defer queue.lock.Unlock()

	queue.moves.PushBack(move)
}

func (queue *Queue) Len() int {
	queue.lock.Lock()
	defer queue.lock.Unlock()

	return queue.moves.Len()
}

// Clear drops every pending move
func (queue *Queue) Clear() {
	queue.lock.Lock()
	defer queue.lock.Unlock()

	queue.moves.Clear()
}

// Drain removes all pending moves and passes them to apply, oldest first.
// apply runs without the lock held, so it may Submit more moves; those are
// left for the next Drain.
func (queue *Queue) Drain(apply func(game.Move)) int {
	queue.lock.Lock()
	pending := make([]game.Move, 0, queue.moves.Len())
	for queue.moves.Len() > 0 {
		pending = append(pending, queue.moves.PopFront().(game.Move))
	}
	queue.lock.Unlock()

	for _, move := range pending {
		apply(move)
	}
	return len(pending)
}
