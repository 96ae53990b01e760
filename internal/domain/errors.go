package domain

import "errors"

var (
	// ErrParse is returned when a value that must be numeric is not, or when a
	// CSV row does not have the expected shape.
	ErrParse = errors.New("parse error")

	// ErrFormat is returned when a date string is not a valid ISO-8601 date.
	ErrFormat = errors.New("invalid date format")

	// ErrEmptyInput is returned when an aggregate is requested over no values.
	ErrEmptyInput = errors.New("empty input")

	// ErrIO is returned when the source file cannot be opened or read.
	ErrIO = errors.New("io error")
)
