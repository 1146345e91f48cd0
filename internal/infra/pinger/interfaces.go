package pinger

import (
	"context"
	"time"
)

// Pinger defines the interface for health check pingers
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Recorder receives the outcome of every ping.
type Recorder interface {
	ObservePing(component string, latency time.Duration, err error)
}

// Optional interface types for type assertions
type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type healthCriticalPinger interface {
	PingerCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}
