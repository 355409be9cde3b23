// file: internals/datastore/datastore_test.go
package datastore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestReadMissingFileSelfHeals(t *testing.T) {
	dir := t.TempDir()
	store := New[record](dir, "events.json")

	items, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, items)

	raw, err := os.ReadFile(filepath.Join(dir, "events.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestReadEmptyFileSelfHeals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.json")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	store := New[record](dir, "gallery.json")
	items, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReadStripsByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	body := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`[{"id":"a","title":"One"}]`)...)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	store := New[record](dir, "events.json")
	items, err := store.Read()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0].Title)
}

func TestReadCorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New[record](dir, "events.json")
	_, err := store.Read()
	assert.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := New[record](dir, "events.json")

	in := []record{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}
	require.NoError(t, store.Write(in))

	out, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteIsPrettyPrinted(t *testing.T) {
	dir := t.TempDir()
	store := New[record](dir, "events.json")
	require.NoError(t, store.Write([]record{{ID: "1", Title: "a"}}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {")
}

func TestUpdateAppliesMutation(t *testing.T) {
	dir := t.TempDir()
	store := New[record](dir, "events.json")
	require.NoError(t, store.Write([]record{{ID: "1", Title: "a"}}))

	err := store.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: "2", Title: "b"}), nil
	})
	require.NoError(t, err)

	out, err := store.Read()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2", out[1].ID)
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	store := New[record](dir, "events.json")
	require.NoError(t, store.Write([]record{{ID: "1", Title: "a"}}))

	err := store.Update(func(items []record) ([]record, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	out, err := store.Read()
	require.NoError(t, err)
	require.Len(t, out, 1)
}
