// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/record"
)

// Record file layout. Every length and count is a little-endian int32 that
// immediately precedes its payload; there is no magic number, version or
// checksum:
//
//	int32 password_len    | password
//	int32 secret_note_len | secret_note
//	int32 key_len         | key
//	int32 notes_count     | notes_count × (int32 len | text, int32 len | info)
//	int32 shared_count    | shared_count × (int32 len | text, int32 len | info)
const (
	// MaxPasswordLen is the largest password length a record may declare.
	MaxPasswordLen = 63

	// MaxFieldSize bounds any other single payload so that a corrupted
	// length cannot force an unbounded allocation.
	MaxFieldSize = 1 << 20

	// MaxEntries bounds the declared number of notes in one collection.
	MaxEntries = 4096
)

// EncodeRecord writes rec to w in the record file layout. The output is
// fully determined by the record state.
//
// A record that [DecodeRecord] would reject is refused with
// [ErrMalformedRecord] before anything is written to w.
func EncodeRecord(w io.Writer, rec *record.Record) error {
	if err := checkLimits(rec); err != nil {
		return err
	}

	enc := &recordEncoder{w: w}
	enc.bytes([]byte(rec.Password))
	enc.bytes(rec.SecretNote)
	enc.bytes(rec.Key)
	enc.notes(rec.Notes)
	enc.notes(rec.SharedNotes)

	return enc.err
}

// DecodeRecord reads a record for username from r. Zero lengths and counts
// decode to empty values. Bytes after the shared notes section are not read.
func DecodeRecord(r io.Reader, username string) (*record.Record, error) {
	dec := &recordDecoder{r: r}

	password := dec.bytes(MaxPasswordLen, "password")
	secretNote := dec.bytes(MaxFieldSize, "secret note")
	key := dec.bytes(MaxFieldSize, "key")
	notes := dec.notes("notes")
	sharedNotes := dec.notes("shared notes")

	if dec.err != nil {
		return nil, dec.err
	}

	return &record.Record{
		Username:    username,
		Password:    string(password),
		SecretNote:  secretNote,
		Key:         key,
		Notes:       notes,
		SharedNotes: sharedNotes,
	}, nil
}

// ReadPassword reads only the password prefix of a record file.
func ReadPassword(r io.Reader) (string, error) {
	dec := &recordDecoder{r: r}
	password := dec.bytes(MaxPasswordLen, "password")
	if dec.err != nil {
		return "", dec.err
	}

	return string(password), nil
}

// checkLimits applies the decoder's limits to rec.
func checkLimits(rec *record.Record) error {
	checks := []struct {
		field string
		n     int
		limit int
	}{
		{"password", len(rec.Password), MaxPasswordLen},
		{"secret note", len(rec.SecretNote), MaxFieldSize},
		{"key", len(rec.Key), MaxFieldSize},
		{"notes count", len(rec.Notes), MaxEntries},
		{"shared notes count", len(rec.SharedNotes), MaxEntries},
	}
	for _, c := range checks {
		if c.n > c.limit {
			return tooLong(c.field, c.n, c.limit)
		}
	}

	collections := []struct {
		field string
		notes []record.Note
	}{
		{"notes", rec.Notes},
		{"shared notes", rec.SharedNotes},
	}
	for _, c := range collections {
		for i, note := range c.notes {
			if len(note.Text) > MaxFieldSize {
				return tooLong(fmt.Sprintf("%s[%d] text", c.field, i), len(note.Text), MaxFieldSize)
			}
			if len(note.Info) > MaxFieldSize {
				return tooLong(fmt.Sprintf("%s[%d] info", c.field, i), len(note.Info), MaxFieldSize)
			}
		}
	}

	return nil
}

func tooLong(field string, n, limit int) error {
	return fmt.Errorf("%w: %s has length %d, at most %d allowed", ErrMalformedRecord, field, n, limit)
}

type recordEncoder struct {
	w   io.Writer
	err error
}

func (e *recordEncoder) int32(v int) {
	if e.err != nil {
		return
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
	if _, err := e.w.Write(buf[:]); err != nil {
		e.err = fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
}

func (e *recordEncoder) bytes(b []byte) {
	e.int32(len(b))
	if e.err != nil || len(b) == 0 {
		return
	}

	if _, err := e.w.Write(b); err != nil {
		e.err = fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
}

func (e *recordEncoder) notes(notes []record.Note) {
	e.int32(len(notes))
	for _, note := range notes {
		e.bytes([]byte(note.Text))
		e.bytes([]byte(note.Info))
	}
}

type recordDecoder struct {
	r   io.Reader
	err error
}

// length reads a declared length or count and checks it against limit.
func (d *recordDecoder) length(limit int, field string) int {
	if d.err != nil {
		return 0
	}

	var buf [4]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		d.fail(field, err)
		return 0
	}

	n := int(int32(binary.LittleEndian.Uint32(buf[:])))
	if n < 0 || n > limit {
		d.err = fmt.Errorf("%w: %s declares length %d, allowed range is [0, %d]", ErrMalformedRecord, field, n, limit)
		return 0
	}

	return n
}

func (d *recordDecoder) bytes(limit int, field string) []byte {
	n := d.length(limit, field)
	if d.err != nil || n == 0 {
		return nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		d.fail(field, err)
		return nil
	}

	return buf
}

func (d *recordDecoder) notes(field string) []record.Note {
	count := d.length(MaxEntries, field+" count")
	if d.err != nil || count == 0 {
		return nil
	}

	notes := make([]record.Note, 0, count)
	for range count {
		text := d.bytes(MaxFieldSize, field+" text")
		info := d.bytes(MaxFieldSize, field+" info")
		if d.err != nil {
			return nil
		}
		notes = append(notes, record.Note{Text: string(text), Info: string(info)})
	}

	return notes
}

func (d *recordDecoder) fail(field string, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		d.err = fmt.Errorf("%w: %s is truncated", ErrMalformedRecord, field)
		return
	}

	d.err = fmt.Errorf("%w: reading %s: %w", ErrIOFailure, field, err)
}
