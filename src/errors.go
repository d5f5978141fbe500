package main

import (
	"errors"
)

var (
	ERR_INTERRUPTED_BY_USER error = errors.New("Interrupted by user")
	ERR_INPUT_CLOSED        error = errors.New("Input closed")
	ERR_BAD_INPUT           error = errors.New("Bad input")
	ERR_EXIT                error = errors.New("Exit requested")
)
