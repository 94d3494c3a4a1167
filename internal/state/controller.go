package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/calyptra/verdant/internal/catalog"
)

// Status describes the collection lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

// String returns the display name for a status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is an independent copy of the collection for rendering.
type Snapshot struct {
	Plants      []catalog.Plant
	Status      Status
	LastError   error
	LastUpdated time.Time
}

// Controller is the single owner of the catalog collection. Loads replace
// the whole sequence, mutations patch individual entries by identity, and a
// monotonic sequence number ensures only the most recently issued load may
// commit its result.
type Controller struct {
	mu        sync.RWMutex
	plants    []catalog.Plant
	status    Status
	lastErr   error
	updatedAt time.Time
	issuedSeq uint64
}

// NewController returns an empty controller in the Idle state.
func NewController() *Controller {
	return &Controller{}
}

// BeginLoad marks the collection as loading and issues a sequence number for
// the request. Existing plants stay visible until the result lands, so the
// UI keeps showing the last good list while revalidating.
func (c *Controller) BeginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issuedSeq++
	c.status = StatusLoading
	return c.issuedSeq
}

// FinishLoad commits a load result. Results whose sequence number is not the
// latest issued are superseded and discarded regardless of arrival order;
// FinishLoad reports whether the result was applied. On failure the previous
// plants are kept and only the status and error change.
func (c *Controller) FinishLoad(seq uint64, plants []catalog.Plant, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.issuedSeq {
		return false
	}

	c.updatedAt = time.Now()
	if err != nil {
		c.status = StatusError
		c.lastErr = err
		return true
	}

	c.plants = clonePlants(plants)
	c.status = StatusReady
	c.lastErr = nil
	return true
}

// ApplyMutation replaces the plant matching id in place, preserving position
// and all other entries. An unknown id is a no-op, not an error: a
// concurrent reload may have dropped the entry. Reports whether a
// replacement happened.
func (c *Controller) ApplyMutation(id string, updated catalog.Plant) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.plants {
		if c.plants[i].ID == id {
			c.plants[i] = updated
			c.updatedAt = time.Now()
			return true
		}
	}
	return false
}

// Prepend inserts a newly created plant at the head of the sequence without
// disturbing the rest.
func (c *Controller) Prepend(plant catalog.Plant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]catalog.Plant, 0, len(c.plants)+1)
	next = append(next, plant)
	next = append(next, c.plants...)
	c.plants = next
	c.updatedAt = time.Now()
}

// Snapshot returns a copy of the current collection state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Plants:      clonePlants(c.plants),
		Status:      c.status,
		LastUpdated: c.updatedAt,
	}
	if c.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", c.lastErr)
	}
	return snap
}

func clonePlants(plants []catalog.Plant) []catalog.Plant {
	if len(plants) == 0 {
		return nil
	}
	dup := make([]catalog.Plant, len(plants))
	copy(dup, plants)
	return dup
}
