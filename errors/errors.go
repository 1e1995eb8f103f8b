package errors

import "fmt"

var (
	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrOnlyWordFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords    = fmt.Errorf("no censored words have been found")
	ErrSinkClosed    = fmt.Errorf("sink is closed")
	ErrSinkSaturated = fmt.Errorf("sink buffer full, event dropped")
)
