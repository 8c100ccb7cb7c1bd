// Package history keeps the capped, most-recent-first record of past
// generations.
package history

import (
	"encoding/json"
	"fmt"

	"newsgen/internal/core"
)

// MaxEntries caps the collection; inserting beyond it evicts the oldest
// records.
const MaxEntries = 50

const historyKey = "news-generator-history"

// KV is the key-value string store records are persisted in. Every mutation
// is a read-whole, compute, write-whole cycle so callers never observe a
// partial write.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store owns the history collection.
type Store struct {
	kv KV
}

// NewStore creates a history store over the given key-value backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// List returns all records, most recent first. Absent or corrupt stored JSON
// yields an empty list, never an error: the history is a convenience cache
// and fails closed.
func (s *Store) List() []core.HistoryRecord {
	raw, ok, err := s.kv.Get(historyKey)
	if err != nil || !ok {
		return []core.HistoryRecord{}
	}

	var records []core.HistoryRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return []core.HistoryRecord{}
	}
	return records
}

// Get returns the record with the given id, or ok=false when absent.
func (s *Store) Get(id string) (core.HistoryRecord, bool) {
	for _, record := range s.List() {
		if record.ID == id {
			return record, true
		}
	}
	return core.HistoryRecord{}, false
}

// Save prepends the record and truncates the collection to MaxEntries.
func (s *Store) Save(record core.HistoryRecord) error {
	records := append([]core.HistoryRecord{record}, s.List()...)
	if len(records) > MaxEntries {
		records = records[:MaxEntries]
	}
	return s.write(records)
}

// DeleteByID removes the record with the given id. Removing an absent id is
// a no-op.
func (s *Store) DeleteByID(id string) error {
	return s.filter(func(record core.HistoryRecord) bool {
		return record.ID != id
	})
}

// DeleteByType removes every record with the given type discriminant,
// preserving the order of survivors.
func (s *Store) DeleteByType(recordType string) error {
	return s.filter(func(record core.HistoryRecord) bool {
		return record.Type != recordType
	})
}

// Clear removes all records.
func (s *Store) Clear() error {
	if err := s.kv.Delete(historyKey); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *Store) filter(keep func(core.HistoryRecord) bool) error {
	records := s.List()
	kept := records[:0]
	for _, record := range records {
		if keep(record) {
			kept = append(kept, record)
		}
	}
	return s.write(kept)
}

func (s *Store) write(records []core.HistoryRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := s.kv.Set(historyKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}
	return nil
}
