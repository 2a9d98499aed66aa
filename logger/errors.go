package logger

import "errors"

var (
	// ErrInvalidArgument is returned when Compose gets no decorators or
	// SetProvider gets no usable factory.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidLevel is returned for unknown levels and for levels that
	// cannot act as a threshold.
	ErrInvalidLevel = errors.New("invalid log level")
)
