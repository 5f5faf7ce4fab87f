package reader

import "errors"

// Structural errors. Each one ends the run; callers match them with errors.Is.
var (
	// File errors
	ErrFileNotFound = errors.New("unable to read file")
	ErrInvalidPath  = errors.New("the given file path refers to a directory")
	ErrRead         = errors.New("error while reading file")

	// Content errors
	ErrMissingHeader       = errors.New("unable to read headers from file, check format")
	ErrInsufficientColumns = errors.New("at least one company's data should exist in file")
	ErrNoData              = errors.New("no data to display")
)
