package form

import (
	"log/slog"
	"sync"

	"github.com/T-Tommy0909/ray-system/pkg/logger"
)

// Registrar receives validity reports from fields.
type Registrar interface {
	Register(id FieldID, valid bool)
	Unregister(id FieldID)
}

// Registry maps mounted fields to their latest validity and reports the
// aggregate to its owner after every change.
//
// notifyMu serializes mutate+notify so callbacks observe changes in order.
// mu only guards the map, which lets callbacks call Valid and Len.
// Callbacks must not call Register or Unregister on the same registry.
type Registry struct {
	notifyMu sync.Mutex

	mu     sync.RWMutex
	values map[FieldID]bool
	closed bool

	onValidated func(valid bool)
	logger      *slog.Logger
}

// NewRegistry creates an empty registry. onValidated may be nil.
func NewRegistry(onValidated func(valid bool), log *slog.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		values:      make(map[FieldID]bool),
		onValidated: onValidated,
		logger:      log,
	}
}

// Register inserts or updates the validity of id. Re-registering the same
// value is a no-op and does not notify.
func (r *Registry) Register(id FieldID, valid bool) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if prev, ok := r.values[id]; ok && prev == valid {
		r.mu.Unlock()
		return
	}
	r.values[id] = valid
	size := len(r.values)
	r.mu.Unlock()

	r.logger.Debug("field registered",
		logger.FieldID(string(id)),
		logger.Valid(valid),
		logger.FieldCount(size),
	)
	r.notify()
}

// Unregister removes id. Unknown IDs are ignored.
func (r *Registry) Unregister(id FieldID) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if _, ok := r.values[id]; r.closed || !ok {
		r.mu.Unlock()
		return
	}
	delete(r.values, id)
	size := len(r.values)
	r.mu.Unlock()

	r.logger.Debug("field unregistered",
		logger.FieldID(string(id)),
		logger.FieldCount(size),
	)
	r.notify()
}

// Valid reports whether no registered field is invalid. An empty registry is valid.
func (r *Registry) Valid() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.values {
		if !v {
			return false
		}
	}
	return true
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}

// Lookup returns the stored validity of id and whether it is present.
func (r *Registry) Lookup(id FieldID) (valid, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	valid, ok = r.values[id]
	return valid, ok
}

// Report invokes the callback with the current aggregate.
func (r *Registry) Report() {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	if r.isClosed() {
		return
	}
	r.notify()
}

// Close drops every entry. Later calls on the registry do nothing.
func (r *Registry) Close() {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	r.closed = true
	clear(r.values)
	r.mu.Unlock()
}

func (r *Registry) isClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

// notify must be called with notifyMu held and mu released.
func (r *Registry) notify() {
	if r.onValidated != nil {
		r.onValidated(r.Valid())
	}
}
