package app

import "errors"

var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrInputClosed indicates the input stream ended.
	ErrInputClosed = errors.New("input closed")
)
