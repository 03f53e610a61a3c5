// Package memhost provides an in-memory [cell.Host] for tests: a plain
// mapping from 256-bit keys to byte strings, standing in for the real
// contract runtime's storage surface.
package memhost

import (
	"sync"

	"github.com/xutdns/ink/pkg/cell"
)

// Host is an in-memory [cell.Host] that also counts reads, writes and
// clears, so tests can assert on the engine's flush-minimality property:
// cells that were never touched should incur no host I/O.
type Host struct {
	mu sync.Mutex

	cells map[cell.Key][]byte

	Reads  int
	Writes int
	Clears int
}

// New returns an empty Host.
func New() *Host {
	return &Host{cells: make(map[cell.Key][]byte)}
}

func (h *Host) GetCell(key cell.Key) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Reads++

	data, ok := h.cells[key]
	if !ok {
		return nil, false
	}

	return append([]byte(nil), data...), true
}

func (h *Host) SetCell(key cell.Key, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Writes++
	h.cells[key] = append([]byte(nil), data...)
}

func (h *Host) ClearCell(key cell.Key) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Clears++
	delete(h.cells, key)
}

// Len returns the number of live cells.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.cells)
}

// ResetCounters zeroes the Reads/Writes/Clears counters without touching
// the stored cells, so a test can isolate the I/O caused by one operation.
func (h *Host) ResetCounters() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Reads, h.Writes, h.Clears = 0, 0, 0
}

var _ cell.Host = (*Host)(nil)
