package connection

import "errors"

var ErrEmptyUserID = errors.New("user id is required to open the push channel")
