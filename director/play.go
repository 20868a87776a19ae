package director

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/xox/game"
)

// Play applies move to match and logs the result. Rejected moves are logged
// and returned; they never change match.
func Play(log logrus.FieldLogger, match *game.Game, move game.Move) (game.Outcome, error) {
	player := match.CurrentPlayer()
	fields := logrus.Fields{
		"row":    move.Row,
		"col":    move.Col,
		"player": player,
	}

	outcome, err := match.Apply(move)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("move rejected")
		return outcome, err
	}

	log.WithFields(fields).Debugf("move accepted\n%v", match)
	if outcome.IsOver() {
		log.WithFields(fields).
			WithField("outcome", outcome.String()).
			Infof("match over\n%s", match.Snapshot().Serialize())
	}
	return outcome, nil
}

// DrainInto applies every queued move to match, oldest first.
func (queue *Queue) DrainInto(log logrus.FieldLogger, match *game.Game) int {
	return queue.Drain(func(move game.Move) {
		_, _ = Play(log, match, move)
	})
}
