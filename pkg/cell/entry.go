package cell

// entryState tracks what, if anything, needs to happen to an Entry on
// flush — the source of the engine's "flush minimality" property: an Entry
// that was never touched performs no host I/O beyond advancing the cursor.
type entryState uint8

const (
	statePreserved entryState = iota
	stateMutated
	stateCleared
)

// spreadPtr is the constraint every lazy container's element type must
// satisfy: a pointer to a value type that knows how to spread itself across
// one or more cells.
type spreadPtr[T any] interface {
	*T
	Spread
}

// Entry caches one lazily-loaded SpreadLayout value together with enough
// state to know, at flush time, whether it needs to be pushed, cleared, or
// simply skipped.
type Entry[T any, PT spreadPtr[T]] struct {
	value  PT
	loaded bool
	state  entryState
}

// newEntry returns an Entry with nothing loaded yet — the first Get will
// pull it from the host.
func newEntry[T any, PT spreadPtr[T]]() *Entry[T, PT] {
	return &Entry[T, PT]{}
}

// entryFromValue returns an Entry already holding v, marked dirty so it is
// written back on the next flush. Used when a container is populated
// in-memory before ever being attached to the key space.
func entryFromValue[T any, PT spreadPtr[T]](v PT) *Entry[T, PT] {
	return &Entry[T, PT]{value: v, loaded: true, state: stateMutated}
}

// Get returns the cached value, pulling it from ptr on first access.
func (e *Entry[T, PT]) Get(ptr *KeyPtr) PT {
	e.ensureLoaded(ptr)
	return e.value
}

// GetMut returns the cached value for mutation, pulling it from ptr on
// first access. Unlike Get, it conservatively marks the entry dirty: the
// caller is handed a pointer it may mutate directly, so there is no way to
// tell afterward whether it actually changed anything.
func (e *Entry[T, PT]) GetMut(ptr *KeyPtr) PT {
	e.ensureLoaded(ptr)
	e.state = stateMutated

	return e.value
}

// PutGet pulls the cached value if necessary, replaces it with v, and
// returns the value it held beforehand.
func (e *Entry[T, PT]) PutGet(v PT, ptr *KeyPtr) PT {
	e.ensureLoaded(ptr)
	old := e.value
	e.Set(v)

	return old
}

// Take pulls the cached value if necessary, clears the entry, and returns
// the value it held beforehand.
func (e *Entry[T, PT]) Take(ptr *KeyPtr) PT {
	e.ensureLoaded(ptr)
	old := e.value
	e.MarkCleared()

	return old
}

func (e *Entry[T, PT]) ensureLoaded(ptr *KeyPtr) {
	if e.loaded {
		return
	}

	var zero T

	v := PT(&zero)
	v.PullSpread(ptr)

	e.value = v
	e.loaded = true
}

// Set replaces the cached value and marks the entry dirty.
func (e *Entry[T, PT]) Set(v PT) {
	e.value = v
	e.loaded = true
	e.state = stateMutated
}

// MarkCleared replaces the cached value with a zero value and marks the
// entry for clearing on flush.
func (e *Entry[T, PT]) MarkCleared() {
	var zero T

	e.value = PT(&zero)
	e.loaded = true
	e.state = stateCleared
}

// footprint reports T's cell footprint without requiring the entry to have
// been loaded yet.
func (e *Entry[T, PT]) footprint() uint64 {
	if e.loaded {
		return e.value.Footprint()
	}

	var zero T

	return PT(&zero).Footprint()
}

// Flush pushes, clears, or skips the entry's backing cells according to its
// state, and resets the state to preserved.
func (e *Entry[T, PT]) Flush(ptr *KeyPtr) {
	switch e.state {
	case stateMutated:
		e.value.PushSpread(ptr)
	case stateCleared:
		e.value.ClearSpread(ptr)
	default: // statePreserved: untouched, just walk past its cells.
		ptr.Advance(e.footprint())
	}

	e.state = statePreserved
}
