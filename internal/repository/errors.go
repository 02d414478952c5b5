package repository

import "errors"

// ErrEmptyTitle indicates a note title was empty after trimming.
var ErrEmptyTitle = errors.New("repository: empty title")

// ErrEmptyQuery indicates a search term was empty after trimming.
var ErrEmptyQuery = errors.New("repository: empty search query")

// ErrNotFound indicates a referenced note file does not exist.
var ErrNotFound = errors.New("repository: note not found")
