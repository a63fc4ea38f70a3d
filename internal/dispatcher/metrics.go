package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/auricle/auricle/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-command metrics
	commandMetrics map[string]*CommandMetrics

	// Global counters
	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDelegated  uint64

	// Timing
	totalDuration time.Duration
}

// CommandMetrics holds metrics for a specific command.
type CommandMetrics struct {
	ID            string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.Status
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		commandMetrics: make(map[string]*CommandMetrics),
	}
}

// RecordDispatch records a completed local execution.
func (m *Metrics) RecordDispatch(id string, duration time.Duration, status handler.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	if status == handler.StatusFatal {
		m.totalErrors++
	}

	cm := m.commandMetrics[id]
	if cm == nil {
		cm = &CommandMetrics{
			ID:          id,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.commandMetrics[id] = cm
	}

	cm.DispatchCount++
	cm.TotalDuration += duration
	cm.LastStatus = status
	cm.LastDispatch = time.Now()

	if duration < cm.MinDuration {
		cm.MinDuration = duration
	}
	if duration > cm.MaxDuration {
		cm.MaxDuration = duration
	}

	if status == handler.StatusFatal {
		cm.ErrorCount++
	}
}

// RecordDelegated records a command offered to the page instead of run
// locally.
func (m *Metrics) RecordDelegated(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalDelegated++
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++

	if cm := m.commandMetrics[id]; cm != nil {
		cm.ErrorCount++
	}
}

// TotalDispatches returns the total number of local executions.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the total number of fatal results.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// TotalDelegated returns the total number of commands offered to the
// page.
func (m *Metrics) TotalDelegated() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDelegated
}

// AverageDuration returns the average local execution duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// CommandStats returns metrics for a specific command.
func (m *Metrics) CommandStats(id string) *CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm := m.commandMetrics[id]
	if cm == nil {
		return nil
	}

	// Return a copy
	copy := *cm
	return &copy
}

// TopCommands returns the top N most dispatched commands.
func (m *Metrics) TopCommands(n int) []*CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]*CommandMetrics, 0, len(m.commandMetrics))
	for _, cm := range m.commandMetrics {
		copy := *cm
		commands = append(commands, &copy)
	}

	sort.Slice(commands, func(i, j int) bool {
		return commands[i].DispatchCount > commands[j].DispatchCount
	})

	if n > len(commands) {
		n = len(commands)
	}
	return commands[:n]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commandMetrics = make(map[string]*CommandMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDelegated = 0
	m.totalDuration = 0
}
