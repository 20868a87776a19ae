package director

import "github.com/they4kman/xox/game"

// MoveSink receives move requests. Implementations must be safe to call from
// any goroutine.
type MoveSink interface {
	Submit(move game.Move)
}

type Director interface {
	/**
	 * Initialize the director, sending its moves to sink
	 */
	Init(sink MoveSink)

	/**
	 * Submit a single move, if any remain
	 */
	Act()

	/**
	 * Continue acting periodically, until End() is called
	 */
	ActContinuously()

	/**
	 * Stop acting
	 */
	End()
}
