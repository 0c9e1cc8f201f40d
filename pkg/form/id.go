package form

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// FieldID identifies one mounted field instance within a registry.
type FieldID string

// IDGenerator hands out field identifiers. Implementations must be safe for
// concurrent use and never return the same ID twice.
type IDGenerator interface {
	NewID() FieldID
}

// Counter is a monotonic IDGenerator. The zero value is ready to use.
type Counter struct {
	prefix string
	n      atomic.Uint64
}

// NewCounter returns a counter whose IDs look like prefix1, prefix2, ...
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

func (c *Counter) NewID() FieldID {
	return FieldID(c.prefix + strconv.FormatUint(c.n.Add(1), 10))
}

// UUIDs generates random v4 UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() FieldID {
	return FieldID(uuid.NewString())
}
