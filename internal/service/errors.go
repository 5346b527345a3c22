package service

import "errors"

var (
	// ErrSessionAlreadyOpen rejects Start while a session is running.
	ErrSessionAlreadyOpen = errors.New("cannot start a session while one is already running")

	// ErrNoOpenSession rejects Stop when nothing is running today, or
	// when today's latest session has already ended.
	ErrNoOpenSession = errors.New("no open session to stop")
)
