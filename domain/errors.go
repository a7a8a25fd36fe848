package domain

import "errors"

var (
	ErrLevelNotFound    = errors.New("level not found")
	ErrDesignerNotFound = errors.New("designer not found")
	ErrUsernameConflict = errors.New("username conflict")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrWeakPassword     = errors.New("weak password")
	ErrInvalidSeed      = errors.New("invalid seed")
)
