package game

import "errors"

var (
	ErrInvalidLocation  = errors.New("invalid location")
	ErrLocationNotEmpty = errors.New("location is not empty")
	ErrGameOver         = errors.New("game is already over")
	ErrInvalidSnapshot  = errors.New("invalid board snapshot")
)
