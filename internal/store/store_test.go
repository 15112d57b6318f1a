package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salom-api/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return st
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	st := newTestStore(t)

	assert.Empty(t, st.LoadDistricts())
	assert.False(t, st.Exists(Districts))
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "districts.json"), []byte("{not json"), 0o644))
	assert.Empty(t, st.LoadDistricts())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)

	districts := []model.District{
		{ID: "1", Name: "Toshkent tumani", Code: "TSH001", Description: "Markaziy ofis joylashgan tuman"},
		{ID: "2", Name: "Samarqand tumani", Code: "SMQ001"},
		{ID: "3", Name: "Farg'ona tumani", Code: "FRG001"},
	}
	require.NoError(t, st.SaveDistricts(districts))

	loaded := st.LoadDistricts()
	// Insertion order is preserved.
	assert.Equal(t, districts, loaded)
	assert.True(t, st.Exists(Districts))
}

func TestSaveWritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, st.SaveDistricts([]model.District{
		{ID: "1", Name: "Яккасарой тумани", Code: "YKS001", Description: "https://maps.example/?q=41.29&r=69.24"},
	}))

	raw, err := os.ReadFile(filepath.Join(dir, "districts.json"))
	require.NoError(t, err)
	content := string(raw)
	// Pretty-printed; non-ASCII text and URLs stored verbatim, not escaped.
	assert.True(t, strings.HasPrefix(content, "[\n  {"))
	assert.Contains(t, content, "Яккасарой тумани")
	assert.Contains(t, content, "https://maps.example/?q=41.29&r=69.24")
	assert.NotContains(t, content, "\\u")
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, st.SaveDistricts(nil))

	raw, err := os.ReadFile(filepath.Join(dir, "districts.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
	assert.Empty(t, st.LoadDistricts())
}

func TestSaveOverwritesCompletely(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDistricts([]model.District{
		{ID: "1", Code: "A"}, {ID: "2", Code: "B"},
	}))
	require.NoError(t, st.SaveDistricts([]model.District{{ID: "3", Code: "C"}}))

	loaded := st.LoadDistricts()
	require.Len(t, loaded, 1)
	assert.Equal(t, "3", loaded[0].ID)
}

func TestLockOrderIsStable(t *testing.T) {
	st := newTestStore(t)

	// Opposite argument orders must not deadlock because Lock sorts by the
	// global collection order before acquiring.
	unlock := st.Lock(Employees, Departments)
	unlock()
	unlock = st.Lock(Departments, Employees)
	unlock()

	done := make(chan struct{})
	go func() {
		u := st.Lock(Attendance, Districts)
		u()
		close(done)
	}()
	<-done
}
