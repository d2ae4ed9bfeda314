package token

import "errors"

var (
	ErrColonSpace = errors.New("colon should be followed by space")
	ErrNoColon    = errors.New("missing key: value separator")
	ErrEmptyKey   = errors.New("empty key")
)
