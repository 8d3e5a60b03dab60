package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-goal-keeper/models"
)

// MemoryCollection is the in-memory remote collection behind the stub goals
// API. Server ids are issued as prefix + sequence ("g1", "g2", ...).
type MemoryCollection[P any] struct {
	mu      sync.RWMutex
	prefix  string
	seq     int64
	records map[string]models.RemoteRecord[P]
	last    time.Time
	now     func() time.Time
}

// NewMemoryCollection constructs an empty [MemoryCollection].
func NewMemoryCollection[P any](prefix string) *MemoryCollection[P] {
	return &MemoryCollection[P]{
		prefix:  prefix,
		records: make(map[string]models.RemoteRecord[P]),
		now:     time.Now,
	}
}

// List returns every record of ownerID ordered by server id sequence.
func (c *MemoryCollection[P]) List(_ context.Context, ownerID int64) []models.RemoteRecord[P] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.RemoteRecord[P], 0, len(c.records))
	for _, r := range c.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b models.RemoteRecord[P]) int {
		return c.sequence(a.ServerID) - c.sequence(b.ServerID)
	})
	return out
}

// Create stores payload under a freshly issued server id.
func (c *MemoryCollection[P]) Create(_ context.Context, ownerID int64, payload P) models.RemoteRecord[P] {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	record := models.RemoteRecord[P]{
		ServerID:  c.prefix + strconv.FormatInt(c.seq, 10),
		OwnerID:   ownerID,
		Payload:   payload,
		UpdatedAt: c.tick(),
	}
	c.records[record.ServerID] = record
	return record
}

// Update applies fn to the stored payload of serverID. Records of another
// owner are reported as [ErrRecordNotFound].
func (c *MemoryCollection[P]) Update(_ context.Context, ownerID int64, serverID string, fn func(*P) error) (models.RemoteRecord[P], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[serverID]
	if !ok || record.OwnerID != ownerID {
		return models.RemoteRecord[P]{}, fmt.Errorf("%w: server_id=%s", ErrRecordNotFound, serverID)
	}

	if err := fn(&record.Payload); err != nil {
		return models.RemoteRecord[P]{}, err
	}
	record.UpdatedAt = c.tick()
	c.records[serverID] = record
	return record, nil
}

// Delete removes serverID.
func (c *MemoryCollection[P]) Delete(_ context.Context, ownerID int64, serverID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[serverID]
	if !ok || record.OwnerID != ownerID {
		return fmt.Errorf("%w: server_id=%s", ErrRecordNotFound, serverID)
	}
	delete(c.records, serverID)
	return nil
}

// Put stores record as is, replacing any record with the same server id. It
// lets tests and tooling simulate edits made by another device.
func (c *MemoryCollection[P]) Put(record models.RemoteRecord[P]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = c.tick()
	}
	c.records[record.ServerID] = record
}

// tick returns a timestamp strictly after the previous one. Callers hold mu.
func (c *MemoryCollection[P]) tick() time.Time {
	c.last = advance(c.now(), c.last)
	return c.last
}

func (c *MemoryCollection[P]) sequence(serverID string) int {
	n, err := strconv.Atoi(serverID[min(len(c.prefix), len(serverID)):])
	if err != nil {
		return 0
	}
	return n
}
