package core

import (
	"errors"
)

var (
	ErrInvalidSettings = errors.New("settings validation failed")
	ErrWatcherClosed   = errors.New("settings watcher already closed")
)
