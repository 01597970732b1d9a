// Package watcher schedules periodic work and reports file writes.
package watcher

import (
	"sort"
	"sync"
	"time"
)

// Runner runs a task every interval until the returned stop func is called.
// Stop prevents future runs; a run already in progress completes. Stop is
// safe to call more than once.
type Runner interface {
	Every(interval time.Duration, task func()) (stop func())
}

// TickerRunner runs tasks on time.Ticker goroutines.
type TickerRunner struct{}

// Every starts a goroutine that calls task on each tick.
func (TickerRunner) Every(interval time.Duration, task func()) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				task()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// ManualRunner records scheduled tasks and runs them only when Tick is
// called, so tests can drive schedules deterministically.
type ManualRunner struct {
	mu     sync.Mutex
	nextID int
	tasks  map[int]manualTask
}

type manualTask struct {
	interval time.Duration
	fn       func()
}

// NewManualRunner returns an empty ManualRunner.
func NewManualRunner() *ManualRunner {
	return &ManualRunner{tasks: make(map[int]manualTask)}
}

// Every registers task; it runs on each Tick until stopped.
func (m *ManualRunner) Every(interval time.Duration, task func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.tasks[id] = manualTask{interval: interval, fn: task}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.tasks, id)
		m.mu.Unlock()
	}
}

// Tick runs every registered task once, in registration order.
func (m *ManualRunner) Tick() {
	m.mu.Lock()
	ids := make([]int, 0, len(m.tasks))
	for id := range m.tasks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.tasks[id].fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Scheduled returns the number of active tasks.
func (m *ManualRunner) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
