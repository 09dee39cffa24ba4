// Package tempsim simulates a rover's atmospheric temperature module:
// sensor goroutines sample on a fixed cadence into a shared log, and a
// reporter periodically snapshots the log to summarize extremes and the
// largest short-window temperature swing. It is fully independent of the
// thank-you-note workload and shares no structures with it.
package tempsim

import (
	"sync"
	"time"
)

// Reading is a single timestamped temperature sample in Fahrenheit.
type Reading struct {
	Temperature int
	Timestamp   time.Time
}

// Log is the shared memory space the sensors write into. A single mutex
// guards both append and snapshot.
type Log struct {
	mu       sync.Mutex
	readings []Reading
}

// Append records one reading.
func (l *Log) Append(r Reading) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.readings = append(l.readings, r)
}

// Snapshot returns the readings accumulated since the previous snapshot and
// clears the log, readying it for the next window.
func (l *Log) Snapshot() []Reading {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.readings
	l.readings = nil
	return out
}

// Len returns the number of readings currently buffered.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.readings)
}
