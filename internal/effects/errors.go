package effects

import "errors"

var (
	ErrNoShape       = errors.New("effect has no target shape")
	ErrAlreadyDumped = errors.New("effect behavior already written")
	ErrUnknownEffect = errors.New("unknown effect")
)
