package domain

import "errors"

// Messages are part of the wire contract: transports write them verbatim.
var (
	ErrIDExists     = errors.New("ID Must Be Unique.")
	ErrIDNotFound   = errors.New("Id Not Found")
	ErrInvalidInput = errors.New("All Fields Must Be Completed.")
	ErrInternal     = errors.New("internal server error")
)
