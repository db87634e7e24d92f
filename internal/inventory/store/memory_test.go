package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

func testKey(id string) Key {
	return Key{{Name: "id", Value: id}}
}

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[testRecord]()

	record := testRecord{ID: "r-1", Name: "Widget", Quantity: 3, Location: "A-1"}
	require.NoError(t, s.Put(ctx, testKey("r-1"), record))

	got, err := s.Get(ctx, testKey("r-1"))
	require.NoError(t, err)
	require.Equal(t, record, *got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore[testRecord]()

	_, err := s.Get(context.Background(), testKey("nonexistent"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[testRecord]()

	require.NoError(t, s.Put(ctx, testKey("r-1"), testRecord{ID: "r-1", Name: "First"}))
	require.NoError(t, s.Put(ctx, testKey("r-1"), testRecord{ID: "r-1", Name: "Second"}))

	got, err := s.Get(ctx, testKey("r-1"))
	require.NoError(t, err)
	require.Equal(t, "Second", got.Name)
	require.Equal(t, 1, s.Size())
}

func TestMemoryStore_ScanAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[testRecord]()

	records, err := s.ScanAll(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, s.Put(ctx, testKey("r-1"), testRecord{ID: "r-1"}))
	require.NoError(t, s.Put(ctx, testKey("r-2"), testRecord{ID: "r-2"}))

	records, err = s.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestMemoryStore_UpdatePartialTouchesOnlyNamedFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[testRecord]()

	require.NoError(t, s.Put(ctx, testKey("r-1"), testRecord{ID: "r-1", Name: "Widget", Quantity: 3, Location: "A-1"}))

	expr, err := BuildUpdate(map[string]any{"quantity": 9}, map[string]bool{"quantity": true}, "id")
	require.NoError(t, err)
	require.NoError(t, s.UpdatePartial(ctx, testKey("r-1"), expr))

	got, err := s.Get(ctx, testKey("r-1"))
	require.NoError(t, err)
	require.Equal(t, 9, got.Quantity)
	require.Equal(t, "Widget", got.Name)
	require.Equal(t, "A-1", got.Location)
	require.Equal(t, "r-1", got.ID)
}

func TestMemoryStore_BlindUpdateCreatesPartialRecord(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[testRecord]()

	expr, err := BuildUpdate(map[string]any{"name": "Ghost"}, map[string]bool{"name": true}, "id")
	require.NoError(t, err)
	require.NoError(t, s.UpdatePartial(ctx, testKey("r-9"), expr))

	got, err := s.Get(ctx, testKey("r-9"))
	require.NoError(t, err)
	require.Equal(t, "Ghost", got.Name)
	require.Equal(t, "r-9", got.ID)
	require.Zero(t, got.Quantity)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[testRecord]()

	require.NoError(t, s.Put(ctx, testKey("r-1"), testRecord{ID: "r-1"}))
	require.NoError(t, s.Delete(ctx, testKey("r-1")))
	require.NoError(t, s.Delete(ctx, testKey("r-1")))
	require.NoError(t, s.Delete(ctx, testKey("never-existed")))

	_, err := s.Get(ctx, testKey("r-1"))
	require.ErrorIs(t, err, ErrNotFound)
}
