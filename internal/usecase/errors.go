package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoDatabase   = errors.New("no database is open")
	ErrNoSelection  = errors.New("no team selected")
)
