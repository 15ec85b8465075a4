package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)
