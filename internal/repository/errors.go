package repository

import "errors"

// ErrNotFound covers both truly absent records and records owned by someone
// else; callers must not be able to tell the two apart.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail indicates the users unique email constraint fired.
var ErrDuplicateEmail = errors.New("email already registered")
