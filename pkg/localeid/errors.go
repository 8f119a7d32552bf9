package localeid

import "errors"

var (
	ErrInvalidIdentifier = errors.New("localeid: invalid locale identifier")
	ErrEmptyIdentifier   = errors.New("localeid: identifier cannot be empty")
)
