package romsig

import "errors"

var (
	ErrorInputNotFound = errors.New("Input file does not exist")
	ErrorIO            = errors.New("I/O failure")
	ErrorImageTooShort = errors.New("Image is shorter than its header")
)
