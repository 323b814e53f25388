package schedule

import (
	"sync"
	"time"
)

// ManualTask is a task held by a Manual scheduler until fired from a test.
type ManualTask struct {
	Delay time.Duration

	mu        sync.Mutex
	fn        func()
	cancelled bool
	fired     bool
}

func (t *ManualTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Fire runs the callback unless the task was already cancelled or fired.
func (t *ManualTask) Fire() {
	t.mu.Lock()
	if t.fired || t.cancelled {
		t.mu.Unlock()
		return
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()
	fn()
}

// Manual is a Scheduler for tests: tasks run only when fired explicitly,
// so timer-driven transitions can be exercised without sleeping.
type Manual struct {
	mu    sync.Mutex
	tasks []*ManualTask
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(d time.Duration, fn func()) Task {
	t := &ManualTask{Delay: d, fn: fn}
	m.mu.Lock()
	m.tasks = append(m.tasks, t)
	m.mu.Unlock()
	return t
}

// Pending returns the tasks that are neither cancelled nor fired yet.
func (m *Manual) Pending() []*ManualTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pending []*ManualTask
	for _, t := range m.tasks {
		t.mu.Lock()
		live := !t.cancelled && !t.fired
		t.mu.Unlock()
		if live {
			pending = append(pending, t)
		}
	}
	return pending
}

// FireNext fires the oldest pending task, if any.
func (m *Manual) FireNext() bool {
	pending := m.Pending()
	if len(pending) == 0 {
		return false
	}
	pending[0].Fire()
	return true
}
