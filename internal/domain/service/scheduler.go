package service

import "time"

// CancelFunc stops a scheduled task if it has not fired yet.
type CancelFunc func()

// Scheduler queues a function to run once after a delay. The order lifecycle
// manager owns its scheduled transitions through this interface so tests can
// flush them without sleeping.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}
