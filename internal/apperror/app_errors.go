package apperror

import "errors"

var (
	ErrStackDoesNotExist = errors.New("stack does not exist")
	ErrNotEnoughMatches  = errors.New("not enough matches in stack")
	ErrInvalidAmount     = errors.New("at least one match must be removed")
	ErrParse             = errors.New("input is not a non-negative integer")
	ErrGameFinished      = errors.New("game is already finished")
)
