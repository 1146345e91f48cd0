package informer

import "errors"

var (
	ErrCacheNotSynced = errors.New("cache not synced")
	ErrNotObject      = errors.New("unexpected object type")
)
