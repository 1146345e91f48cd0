package controller

import "time"

// Action tells the dispatcher when to look at an object again.
type Action struct {
	RequeueAfter time.Duration
	Immediate    bool
}

// Requeue schedules the next reconcile after d.
func Requeue(d time.Duration) Action {
	return Action{RequeueAfter: d}
}

// RequeueImmediately re-adds the key through the per-item rate limiter.
func RequeueImmediately() Action {
	return Action{Immediate: true}
}

// AwaitChange waits for the next watch event; no timer is set.
func AwaitChange() Action {
	return Action{}
}

// IsAwaitChange reports whether no requeue is scheduled.
func (a Action) IsAwaitChange() bool {
	return !a.Immediate && a.RequeueAfter <= 0
}
