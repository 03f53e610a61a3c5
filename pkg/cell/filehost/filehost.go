// Package filehost is a durable, file-backed [cell.Host]: a single flat
// file holding every live cell, guarded by a single-writer lock and
// replaced atomically on flush so a crash mid-write never leaves a torn
// file behind.
package filehost

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/xutdns/ink/pkg/cell"
	"github.com/xutdns/ink/pkg/fs"
)

// Options configure Open.
type Options struct {
	// UserVersion is an opaque schema tag the caller controls; Open does
	// not interpret it beyond round-tripping it through the file header.
	UserVersion uint64
}

// Host is a durable, file-backed [cell.Host].
//
// Only one Host may be open on a given path at a time (across all
// processes), enforced with the same flock-based locking the teacher's
// fs package uses for its lock files.
type Host struct {
	mu sync.Mutex

	fsys fs.FS
	path string
	lock *fs.Lock

	writer *fs.AtomicWriter

	userVersion uint64
	cells       map[cell.Key][]byte

	closed bool
}

var _ cell.Host = (*Host)(nil)

// Open opens (or creates) the cell store at path, acquiring an exclusive
// writer lock on a sibling ".lock" file. Open blocks until the lock is
// available; use [OpenNonBlocking] for opportunistic opens.
func Open(fsys fs.FS, path string, opts Options) (*Host, error) {
	locker := fs.NewLocker(fsys)

	lock, err := locker.Lock(path + ".lock")
	if err != nil {
		return nil, fmt.Errorf("filehost: acquiring writer lock: %w", err)
	}

	return openLocked(fsys, path, opts, lock)
}

// OpenNonBlocking is like Open but returns [fs.ErrWouldBlock] immediately
// if another process already holds the lock.
func OpenNonBlocking(fsys fs.FS, path string, opts Options) (*Host, error) {
	locker := fs.NewLocker(fsys)

	lock, err := locker.TryLock(path + ".lock")
	if err != nil {
		return nil, fmt.Errorf("filehost: acquiring writer lock: %w", err)
	}

	return openLocked(fsys, path, opts, lock)
}

func openLocked(fsys fs.FS, path string, opts Options, lock *fs.Lock) (*Host, error) {
	h := &Host{
		fsys:        fsys,
		path:        path,
		lock:        lock,
		writer:      fs.NewAtomicWriter(fsys),
		userVersion: opts.UserVersion,
		cells:       make(map[cell.Key][]byte),
	}

	exists, err := fsys.Exists(path)
	if err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("filehost: checking %q: %w", path, err)
	}

	if exists {
		if err := h.load(); err != nil {
			_ = lock.Close()
			return nil, err
		}
	}

	return h, nil
}

func (h *Host) load() error {
	data, err := h.fsys.ReadFile(h.path)
	if err != nil {
		return fmt.Errorf("filehost: reading %q: %w", h.path, err)
	}

	hdr, err := decodeHeader(data)
	if err != nil {
		return err
	}

	body := data[headerSize:]
	cells := make(map[cell.Key][]byte, hdr.recordCount)

	for range hdr.recordCount {
		if len(body) < cell.KeySize+4 {
			return fmt.Errorf("%w: truncated record", ErrCorrupt)
		}

		var key cell.Key
		copy(key[:], body[:cell.KeySize])
		body = body[cell.KeySize:]

		n := binary.LittleEndian.Uint32(body[:4])
		body = body[4:]

		if uint32(len(body)) < n {
			return fmt.Errorf("%w: truncated record payload", ErrCorrupt)
		}

		cells[key] = append([]byte(nil), body[:n]...)
		body = body[n:]
	}

	h.userVersion = hdr.userVersion
	h.cells = cells

	return nil
}

// UserVersion returns the schema tag recorded in the file header.
func (h *Host) UserVersion() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.userVersion
}

func (h *Host) GetCell(key cell.Key) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, ok := h.cells[key]
	if !ok {
		return nil, false
	}

	return append([]byte(nil), data...), true
}

func (h *Host) SetCell(key cell.Key, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cells[key] = append([]byte(nil), data...)
}

func (h *Host) ClearCell(key cell.Key) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.cells, key)
}

// Len returns the number of live cells.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.cells)
}

// Flush writes every live cell to the backing file atomically: a temp file
// is written, synced, and renamed over the real path, so a crash mid-flush
// never corrupts the previous durable state.
func (h *Host) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	return h.flushLocked()
}

func (h *Host) flushLocked() error {
	buf := encodeHeader(fileHeader{
		userVersion: h.userVersion,
		recordCount: uint64(len(h.cells)),
	})

	for key, data := range h.cells {
		buf = append(buf, key[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(data)))
		buf = append(buf, data...)
	}

	return h.writer.Write(h.path, bytes.NewReader(buf), fs.AtomicWriteOptions{
		SyncDir: true,
		Perm:    0o644,
	})
}

// Close flushes pending writes and releases the writer lock. Close is
// idempotent.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}

	flushErr := h.flushLocked()
	h.closed = true
	h.mu.Unlock()

	lockErr := h.lock.Close()

	if flushErr != nil {
		return flushErr
	}

	return lockErr
}
