// Package schedule provides the timer-backed task scheduler.
package schedule

import (
	"time"

	"herbwise/internal/domain/service"
)

// TimerScheduler runs tasks on real timers via time.AfterFunc.
type TimerScheduler struct{}

// NewTimerScheduler creates the production scheduler.
func NewTimerScheduler() service.Scheduler {
	return &TimerScheduler{}
}

// Schedule queues fn to run once after delay and returns a cancel function.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) service.CancelFunc {
	timer := time.AfterFunc(delay, fn)

	return func() { timer.Stop() }
}
