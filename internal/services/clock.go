package services

import "time"

// Clock is the source of "now" for every timestamp and expiry decision.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func SystemClock() Clock {
	return systemClock{}
}
