package controller

import (
	"time"

	"k8s.io/apimachinery/pkg/types"
)

// FixedBackoff requeues every failure after the same delay. Conflicts are
// retried right away because a fresh read usually resolves them.
type FixedBackoff struct {
	Delay time.Duration
}

// NewFixedBackoff creates an error policy with the given delay.
func NewFixedBackoff(delay time.Duration) FixedBackoff {
	if delay <= 0 {
		delay = DefaultErrorRequeueInterval
	}

	return FixedBackoff{Delay: delay}
}

var _ ErrorPolicy = FixedBackoff{}

// Next implements ErrorPolicy.
func (p FixedBackoff) Next(_ types.NamespacedName, err error) Action {
	if IsConflict(err) {
		return RequeueImmediately()
	}

	return Requeue(p.Delay)
}
