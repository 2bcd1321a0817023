// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package record holds the in-memory aggregate of a single user's note
// storage: the credential, the XOR-encrypted secret note and the two bounded
// note collections (own notes and notes shared by other users).
//
// A Record is owned by exactly one unit of work at a time. It is loaded from
// the record file, mutated through the methods below and written back by the
// storage layer. Shared notes are value copies; no references between records
// are ever kept.
package record

// MaxNotes is the capacity threshold of both note collections. An append is
// rejected only once a collection already holds more than MaxNotes entries,
// so a collection can grow to MaxNotes+1 entries.
const MaxNotes = 10

// Note is a (text, info) pair. Both halves are always stored, moved and
// deleted together.
type Note struct {
	Text string
	Info string
}

// Record is the full persisted state of one username.
type Record struct {
	// Username is the storage key. It is set on load and never changes.
	Username string

	// Password is the plaintext credential (at most 63 bytes on disk).
	Password string

	// SecretNote is the ciphertext produced by XOR with Key.
	SecretNote []byte

	// Key is the XOR key. Decryption requires len(Key) == len(SecretNote).
	Key []byte

	// Notes are the notes owned by this user.
	Notes []Note

	// SharedNotes are copies of notes other users shared with this user.
	SharedNotes []Note
}

// New returns an empty record for username with the given password. This is
// the state a freshly registered account decodes to.
func New(username, password string) *Record {
	return &Record{
		Username: username,
		Password: password,
	}
}

// Size reports the logical size of the record: the number of entries held
// across both note collections. Negative delete indexes are normalized
// against this value rather than against the collection being modified.
func (r *Record) Size() int {
	return len(r.Notes) + len(r.SharedNotes)
}

// AddNote appends a note. It fails with ErrCapacityExceeded once the record
// already holds more than MaxNotes notes.
func (r *Record) AddNote(text, info string) error {
	if len(r.Notes) > MaxNotes {
		return ErrCapacityExceeded
	}

	r.Notes = append(r.Notes, Note{Text: text, Info: info})
	return nil
}

// GetNote returns the note at index.
func (r *Record) GetNote(index int) (Note, error) {
	return getAt(r.Notes, index)
}

// ListNotes returns a copy of the owned notes.
func (r *Record) ListNotes() []Note {
	return append([]Note(nil), r.Notes...)
}

// DeleteNote removes the note at index.
//
// A negative index is normalized by adding r.Size(). The upper bound is
// inclusive: index == len(Notes) is accepted and removes the last note.
func (r *Record) DeleteNote(index int) error {
	notes, err := r.deleteAt(r.Notes, index)
	if err != nil {
		return err
	}

	r.Notes = notes
	return nil
}

// ShareNote copies the note at noteID into recipient's shared notes. The
// recipient's capacity is checked before the note id. The sharer's note is
// not affected and later changes to it are not propagated.
func (r *Record) ShareNote(noteID int, recipient *Record) error {
	if len(recipient.SharedNotes) > MaxNotes {
		return ErrCapacityExceeded
	}

	note, err := getAt(r.Notes, noteID)
	if err != nil {
		return err
	}

	recipient.SharedNotes = append(recipient.SharedNotes, note)
	return nil
}

// GetSharedNote returns the shared note at index.
func (r *Record) GetSharedNote(index int) (Note, error) {
	return getAt(r.SharedNotes, index)
}

// ListSharedNotes returns a copy of the shared notes.
func (r *Record) ListSharedNotes() []Note {
	return append([]Note(nil), r.SharedNotes...)
}

// DeleteSharedNote removes the shared note at index, with the same index
// rules as DeleteNote.
func (r *Record) DeleteSharedNote(index int) error {
	notes, err := r.deleteAt(r.SharedNotes, index)
	if err != nil {
		return err
	}

	r.SharedNotes = notes
	return nil
}

// AddSecretNote replaces the ciphertext and the key. No relationship between
// their lengths is enforced here.
func (r *Record) AddSecretNote(ciphertext, key []byte) {
	r.SecretNote = append([]byte(nil), ciphertext...)
	r.Key = append([]byte(nil), key...)
}

// ShowSecretNote decrypts the secret note with the stored key.
func (r *Record) ShowSecretNote() (string, error) {
	if len(r.SecretNote) == 0 || len(r.Key) != len(r.SecretNote) {
		return "", ErrDecryptUnavailable
	}

	return string(XOR(r.SecretNote, r.Key)), nil
}

func (r *Record) deleteAt(notes []Note, index int) ([]Note, error) {
	if len(notes) == 0 {
		return notes, ErrEmptyCollection
	}

	if index < 0 {
		index += r.Size()
	}

	if index < 0 || index > len(notes) {
		return notes, ErrIndexOutOfRange
	}

	// index == len(notes) drops the tail entry
	if index == len(notes) {
		index--
	}

	return append(notes[:index:index], notes[index+1:]...), nil
}

func getAt(notes []Note, index int) (Note, error) {
	if index < 0 || index >= len(notes) {
		return Note{}, ErrIndexOutOfRange
	}

	return notes[index], nil
}
