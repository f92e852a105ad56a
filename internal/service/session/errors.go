package session

import "errors"

var (
	ErrEmptyUserID = errors.New("user id is required")
	ErrEmptyToken  = errors.New("session token is required")
)
