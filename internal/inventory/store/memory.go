package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore implements Store with a mutex-guarded map. It backs tests
// and local runs where no MongoDB is available.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{records: make(map[string]T)}
}

func (s *MemoryStore[T]) Get(_ context.Context, key Key) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[keyString(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MemoryStore[T]) ScanAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]T, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	return records, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, key Key, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[keyString(key)] = record
	return nil
}

func (s *MemoryStore[T]) UpdatePartial(_ context.Context, key Key, expr UpdateExpression) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Missing key: start from a zero record, same blind-upsert looseness
	// as the production store.
	record := s.records[keyString(key)]

	fields := map[string]any{}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	for _, set := range expr.Sets {
		fields[set.Name] = set.Value
	}
	for _, field := range key {
		fields[field.Name] = field.Value
	}

	raw, err = json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.records[keyString(key)] = updated
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, keyString(key))
	return nil
}

// Size reports the number of stored records.
func (s *MemoryStore[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func keyString(key Key) string {
	var b strings.Builder
	for i, field := range key {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%s=%v", field.Name, field.Value)
	}
	return b.String()
}
