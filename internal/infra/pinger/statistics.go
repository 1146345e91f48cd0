package pinger

import (
	"sync"
	"time"
)

// ErrorSnapshot represents a snapshot of an error occurrence
type ErrorSnapshot struct {
	Timestamp time.Time
	Latency   time.Duration
	Error     error
}

// stats tracks the outcome history of a single pinger.
type stats struct {
	mu                  sync.RWMutex
	lastRun             time.Time
	lastSuccess         time.Time
	lastLatency         time.Duration
	lastErrorSnapshot   *ErrorSnapshot
	consecutiveFailures int
	successCount        int
	errorCount          int
}

func (s *stats) record(now time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = now
	s.lastLatency = latency

	if err != nil {
		s.errorCount++
		s.consecutiveFailures++
		s.lastErrorSnapshot = &ErrorSnapshot{
			Timestamp: now,
			Latency:   latency,
			Error:     err,
		}

		return
	}

	s.successCount++
	s.consecutiveFailures = 0
	s.lastSuccess = now
}

// Statistics is a point-in-time copy of a pinger's state.
type Statistics struct {
	IsReady             bool           `json:"ready"`
	IsHealthy           bool           `json:"healthy"`
	LastRun             time.Time      `json:"lastRun"`
	LastSuccess         time.Time      `json:"lastSuccess"`
	LastLatency         time.Duration  `json:"lastLatency"`
	LastError           error          `json:"-"`
	LastErrorSnapshot   *ErrorSnapshot `json:"-"`
	ConsecutiveFailures int            `json:"consecutiveFailures"`
	SuccessCount        int            `json:"successCount"`
	ErrorCount          int            `json:"errorCount"`
}

// snapshot computes Statistics. A pinger that never ran is neither ready nor
// healthy unless it is non-critical for that probe.
func (s *stats) snapshot(info *pingerInfo) *Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lastErr error

	failing := s.lastRun.IsZero() || s.consecutiveFailures > 0
	if s.consecutiveFailures > 0 && s.lastErrorSnapshot != nil {
		lastErr = s.lastErrorSnapshot.Error
	}

	var lastErrorSnapshot *ErrorSnapshot
	if s.lastErrorSnapshot != nil {
		cp := *s.lastErrorSnapshot
		lastErrorSnapshot = &cp
	}

	return &Statistics{
		IsReady:             !info.readyCritical || !failing,
		IsHealthy:           !info.healthCritical || !failing,
		LastRun:             s.lastRun,
		LastSuccess:         s.lastSuccess,
		LastLatency:         s.lastLatency,
		LastError:           lastErr,
		LastErrorSnapshot:   lastErrorSnapshot,
		ConsecutiveFailures: s.consecutiveFailures,
		SuccessCount:        s.successCount,
		ErrorCount:          s.errorCount,
	}
}
