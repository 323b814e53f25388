package schedule

import "time"

// Task is a scheduled callback that can be cancelled before it runs.
type Task interface {
	// Cancel stops the task and reports whether it was stopped before running.
	Cancel() bool
}

// Scheduler schedules one-shot deferred callbacks. Widgets must cancel a
// pending task before scheduling its replacement so timers never accumulate.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() bool {
	return t.timer.Stop()
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, fn)}
}

// New returns a Scheduler backed by time.AfterFunc.
func New() Scheduler {
	return timerScheduler{}
}
