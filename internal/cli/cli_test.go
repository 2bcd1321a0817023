package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--dir", dir))

	err := cmd.Execute()
	return out.String(), err
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "create", "alice12", "hunter22")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user alice12")

	data, err := os.ReadFile(filepath.Join(dir, "alice12"))
	require.NoError(t, err)
	assert.Len(t, data, 4+8+4*4, "fresh record is the password plus four zero lengths")
}

func TestCreate_ExistingUserIsNotOverwritten(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "create", "alice12", "hunter22")
	require.NoError(t, err)

	_, err = run(t, dir, "create", "alice12", "other123")
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)

	_, err = run(t, dir, "check-password", "alice12", "hunter22")
	assert.NoError(t, err)
}

func TestCreate_InvalidCredentials(t *testing.T) {
	_, err := run(t, t.TempDir(), "create", "al", "hunter22")
	assert.ErrorIs(t, err, validators.ErrInvalidLogin)

	_, err = run(t, t.TempDir(), "create", "alice12", "pw")
	assert.ErrorIs(t, err, validators.ErrInvalidPassword)
}

func TestCreate_WrongArgCount(t *testing.T) {
	_, err := run(t, t.TempDir(), "create", "alice12")
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "exists", "alice12")
	require.NoError(t, err)
	assert.Contains(t, out, "User alice12 does not exist")

	_, err = run(t, dir, "create", "alice12", "hunter22")
	require.NoError(t, err)

	out, err = run(t, dir, "exists", "alice12")
	require.NoError(t, err)
	assert.Contains(t, out, "User alice12 exists")
}

func TestExists_RejectsPathLikeNames(t *testing.T) {
	_, err := run(t, t.TempDir(), "exists", "../etc")
	assert.ErrorIs(t, err, validators.ErrInvalidIdentifier)
}

func TestCheckPassword(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "create", "alice12", "hunter22")
	require.NoError(t, err)

	out, err := run(t, dir, "check-password", "alice12", "hunter22")
	require.NoError(t, err)
	assert.Contains(t, out, "Password matches")

	out, err = run(t, dir, "check-password", "alice12", "hunter23")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Contains(t, out, "Wrong password for alice12")

	_, err = run(t, dir, "check-password", "bobby1", "hunter22")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func seedRecord(t *testing.T, dir string) {
	t.Helper()

	storage, err := store.NewRecordFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	rec := record.New("alice12", "hunter22")
	require.NoError(t, rec.AddNote("first", "one"))
	require.NoError(t, rec.AddNote("second", "two"))
	rec.SharedNotes = []record.Note{{Text: "from bob", Info: "hi"}}
	key := record.ExpandKey([]byte{0x13, 0x37}, 4)
	rec.AddSecretNote(record.XOR([]byte("flag"), key), key)

	require.NoError(t, storage.Save(t.Context(), rec))
}

func TestDump_JSON(t *testing.T) {
	dir := t.TempDir()
	seedRecord(t, dir)

	out, err := run(t, dir, "dump", "alice12", "--json")
	require.NoError(t, err)

	var got recordDump
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, recordDump{
		Username:    "alice12",
		Password:    "hunter22",
		SecretNote:  "755b7250",
		Key:         "13371337",
		Notes:       []noteDump{{ID: 0, Note: "first", Info: "one"}, {ID: 1, Note: "second", Info: "two"}},
		SharedNotes: []noteDump{{ID: 0, Note: "from bob", Info: "hi"}},
	}, got)
}

func TestDump_Text(t *testing.T) {
	dir := t.TempDir()
	seedRecord(t, dir)

	out, err := run(t, dir, "dump", "alice12")
	require.NoError(t, err)

	assert.Contains(t, out, "Record alice12:")
	assert.Contains(t, out, "Key:          13371337")
	assert.Contains(t, out, "Notes (2):")
	assert.Contains(t, out, "1. second  two")
	assert.Contains(t, out, "Shared notes (1):")
}

func TestDump_FreshRecordHasEmptyFields(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "create", "alice12", "hunter22")
	require.NoError(t, err)

	out, err := run(t, dir, "dump", "alice12", "--json")
	require.NoError(t, err)

	var got recordDump
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.SecretNote)
	assert.Empty(t, got.Notes)
	assert.Empty(t, got.SharedNotes)
}

func TestDump_MissingUser(t *testing.T) {
	_, err := run(t, t.TempDir(), "dump", "nobody1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}
