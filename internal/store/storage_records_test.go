package store

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/record"
)

func newTestRecordStorage(t *testing.T) (RecordStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewRecordFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestPathResolver_Verbatim(t *testing.T) {
	p := NewPathResolver("/var/notes")
	assert.Equal(t, "/var/notes/alice12", p.Resolve("alice12"))
	assert.Equal(t, "/var/notes", p.BaseDir())
}

func TestNewRecordFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "storage")

	_, err := NewRecordFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewRecordFileStorage_EmptyDir(t *testing.T) {
	_, err := NewRecordFileStorage("", logger.Nop())
	assert.ErrorIs(t, err, ErrIOFailure)
}

func TestCreate_WritesMinimalRecord(t *testing.T) {
	s, dir := newTestRecordStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "alice12", "hunter22"))

	data, err := os.ReadFile(filepath.Join(dir, "alice12"))
	require.NoError(t, err)
	assert.Equal(t, le(8, "hunter22", 0, 0, 0, 0), data)
}

func TestExists(t *testing.T) {
	s, _ := newTestRecordStorage(t)
	ctx := context.Background()

	assert.False(t, s.Exists(ctx, "alice12"))

	require.NoError(t, s.Create(ctx, "alice12", "hunter22"))
	assert.True(t, s.Exists(ctx, "alice12"))
}

func TestCheckPassword(t *testing.T) {
	s, _ := newTestRecordStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice12", "hunter22"))

	ok, err := s.CheckPassword(ctx, "alice12", "hunter22")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CheckPassword(ctx, "alice12", "hunter23")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPassword_Missing(t *testing.T) {
	s, _ := newTestRecordStorage(t)

	_, err := s.CheckPassword(context.Background(), "nobody1", "whatever")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCheckPassword_MalformedPrefix(t *testing.T) {
	s, dir := newTestRecordStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken1"), le(-5), 0o600))

	_, err := s.CheckPassword(context.Background(), "broken1", "whatever")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoad_Missing(t *testing.T) {
	s, _ := newTestRecordStorage(t)

	_, err := s.Load(context.Background(), "nobody1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestLoad_Truncated(t *testing.T) {
	s, dir := newTestRecordStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken1"), le(8, "hunter22", 0), 0o600))

	_, err := s.Load(context.Background(), "broken1")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newTestRecordStorage(t)
	ctx := context.Background()

	rec := record.New("alice12", "hunter22")
	require.NoError(t, rec.AddNote("hi", "info"))
	rec.SharedNotes = []record.Note{{Text: "from bob", Info: "x"}}
	rec.AddSecretNote([]byte{0x75, 0x5f, 0x52, 0x50}, []byte{0x13, 0x33, 0x33, 0x37})
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Load(ctx, "alice12")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestSave_ShrinkingRecordReplacesFile(t *testing.T) {
	s, dir := newTestRecordStorage(t)
	ctx := context.Background()

	rec := record.New("alice12", "hunter22")
	require.NoError(t, rec.AddNote("a long note text", "and its info"))
	require.NoError(t, s.Save(ctx, rec))

	require.NoError(t, rec.DeleteNote(0))
	require.NoError(t, s.Save(ctx, rec))

	data, err := os.ReadFile(filepath.Join(dir, "alice12"))
	require.NoError(t, err)
	assert.Equal(t, le(8, "hunter22", 0, 0, 0, 0), data)
}

func TestSave_EncodeErrorKeepsExistingFile(t *testing.T) {
	s, dir := newTestRecordStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice12", "hunter22"))

	bad := record.New("alice12", string(make([]byte, MaxPasswordLen+1)))
	assert.ErrorIs(t, s.Save(ctx, bad), ErrMalformedRecord)

	data, err := os.ReadFile(filepath.Join(dir, "alice12"))
	require.NoError(t, err)
	assert.Equal(t, le(8, "hunter22", 0, 0, 0, 0), data)
}

func TestSave_OversizedNoteKeepsRecordLoadable(t *testing.T) {
	s, _ := newTestRecordStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice12", "hunter22"))

	rec, err := s.Load(ctx, "alice12")
	require.NoError(t, err)
	require.NoError(t, rec.AddNote(strings.Repeat("x", MaxFieldSize+1), "info"))
	assert.ErrorIs(t, s.Save(ctx, rec), ErrMalformedRecord)

	got, err := s.Load(ctx, "alice12")
	require.NoError(t, err)
	assert.Equal(t, record.New("alice12", "hunter22"), got)
}

func TestSave_LeavesNoTemporaryFiles(t *testing.T) {
	s, dir := newTestRecordStorage(t)
	ctx := context.Background()

	rec := record.New("alice12", "hunter22")
	for i := range 3 {
		require.NoError(t, rec.AddNote("note", strconv.Itoa(i)))
		require.NoError(t, s.Save(ctx, rec))
	}
	require.Error(t, s.Save(ctx, record.New("alice12", strings.Repeat("p", MaxPasswordLen+1))))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice12", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(recordFileMode), info.Mode().Perm())

	got, err := s.Load(ctx, "alice12")
	require.NoError(t, err)
	assert.Len(t, got.Notes, 3)
}

func TestSave_WriteFailureKeepsExistingFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	s, dir := newTestRecordStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice12", "hunter22"))

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	rec := record.New("alice12", "hunter22")
	require.NoError(t, rec.AddNote("lost", "info"))
	assert.ErrorIs(t, s.Save(ctx, rec), ErrIOFailure)

	data, err := os.ReadFile(filepath.Join(dir, "alice12"))
	require.NoError(t, err)
	assert.Equal(t, le(8, "hunter22", 0, 0, 0, 0), data)
}
