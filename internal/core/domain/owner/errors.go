package owner

import "errors"

var (
	ErrOwnerDoesNotExist   = errors.New("owner does not exist")
	ErrLoginCodeInvalid    = errors.New("login code is invalid or expired")
	ErrSessionDoesNotExist = errors.New("session does not exist")
)
