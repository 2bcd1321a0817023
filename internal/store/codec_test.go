package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-note-keeper/internal/record"
)

// le builds a record image from int32 values and raw byte strings.
func le(parts ...any) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		switch v := p.(type) {
		case int:
			_ = binary.Write(&buf, binary.LittleEndian, int32(v))
		case string:
			buf.WriteString(v)
		}
	}
	return buf.Bytes()
}

func TestEncodeRecord_FreshRecordIsPasswordAndFourZeros(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeRecord(&buf, record.New("alice12", "hunter22")))

	assert.Equal(t, le(8, "hunter22", 0, 0, 0, 0), buf.Bytes())
}

func TestEncodeRecord_Layout(t *testing.T) {
	rec := &record.Record{
		Username:    "alice12",
		Password:    "pw",
		SecretNote:  []byte{0x01, 0x02},
		Key:         []byte{0x03, 0x04},
		Notes:       []record.Note{{Text: "t", Info: "in"}},
		SharedNotes: []record.Note{{Text: "s", Info: ""}},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeRecord(&buf, rec))

	want := le(2, "pw", 2, "\x01\x02", 2, "\x03\x04", 1, 1, "t", 2, "in", 1, 1, "s", 0)
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodeRecord_RejectsLongPassword(t *testing.T) {
	rec := record.New("alice12", string(bytes.Repeat([]byte("p"), MaxPasswordLen+1)))

	err := EncodeRecord(&bytes.Buffer{}, rec)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

// countingWriter records how many bytes reached it.
type countingWriter struct{ n int }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}

func TestEncodeRecord_RejectsWhatDecodeWouldReject(t *testing.T) {
	oversized := strings.Repeat("x", MaxFieldSize+1)

	tests := []struct {
		name   string
		field  string
		mutate func(rec *record.Record)
	}{
		{"note text", "notes[0] text", func(rec *record.Record) { rec.Notes = []record.Note{{Text: oversized, Info: "info"}} }},
		{"note info", "notes[1] info", func(rec *record.Record) { rec.Notes = []record.Note{{Text: "t"}, {Text: "t", Info: oversized}} }},
		{"shared note text", "shared notes[0] text", func(rec *record.Record) { rec.SharedNotes = []record.Note{{Text: oversized}} }},
		{"shared note info", "shared notes[0] info", func(rec *record.Record) { rec.SharedNotes = []record.Note{{Info: oversized}} }},
		{"secret note", "secret note", func(rec *record.Record) { rec.SecretNote = []byte(oversized) }},
		{"key", "key", func(rec *record.Record) { rec.Key = []byte(oversized) }},
		{"notes count", "notes count", func(rec *record.Record) { rec.Notes = make([]record.Note, MaxEntries+1) }},
		{"shared notes count", "shared notes count", func(rec *record.Record) { rec.SharedNotes = make([]record.Note, MaxEntries+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record.New("alice12", "hunter22")
			tt.mutate(rec)

			var w countingWriter
			err := EncodeRecord(&w, rec)
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), tt.field)
			assert.Zero(t, w.n, "nothing may be written for a rejected record")
		})
	}
}

func TestEncodeRecord_LimitsAreInclusive(t *testing.T) {
	atLimit := strings.Repeat("x", MaxFieldSize)
	rec := record.New("alice12", "hunter22")
	rec.Notes = []record.Note{{Text: atLimit, Info: atLimit}}
	rec.SecretNote = []byte(atLimit)
	rec.Key = []byte(atLimit)

	var buf bytes.Buffer
	require.NoError(t, EncodeRecord(&buf, rec))

	decoded, err := DecodeRecord(&buf, "alice12")
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeRecord_WriteError(t *testing.T) {
	err := EncodeRecord(failingWriter{}, record.New("alice12", "hunter22"))
	assert.ErrorIs(t, err, ErrIOFailure)
}

func TestDecodeRecord_FreshRecord(t *testing.T) {
	rec, err := DecodeRecord(bytes.NewReader(le(8, "hunter22", 0, 0, 0, 0)), "alice12")
	require.NoError(t, err)

	assert.Equal(t, record.New("alice12", "hunter22"), rec)
	assert.Zero(t, rec.Size())
}

func TestDecodeRecord_IgnoresTrailingBytes(t *testing.T) {
	data := append(le(2, "pw", 0, 0, 0, 0), 0xde, 0xad)

	rec, err := DecodeRecord(bytes.NewReader(data), "bobby1")
	require.NoError(t, err)
	assert.Equal(t, "pw", rec.Password)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty file", data: nil},
		{name: "short length prefix", data: []byte{1, 0}},
		{name: "negative password length", data: le(-1)},
		{name: "password too long", data: le(64, string(bytes.Repeat([]byte("p"), 64)), 0, 0, 0, 0)},
		{name: "truncated password", data: le(8, "hunt")},
		{name: "missing sections", data: le(2, "pw", 0)},
		{name: "negative notes count", data: le(2, "pw", 0, 0, -3)},
		{name: "notes count above limit", data: le(2, "pw", 0, 0, MaxEntries+1)},
		{name: "field above limit", data: le(2, "pw", MaxFieldSize+1)},
		{name: "truncated note info", data: le(2, "pw", 0, 0, 1, 1, "t", 5, "in")},
		{name: "missing shared count", data: le(2, "pw", 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeRecord(bytes.NewReader(tt.data), "alice12")
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestReadPassword(t *testing.T) {
	password, err := ReadPassword(bytes.NewReader(le(8, "hunter22")))
	require.NoError(t, err)
	assert.Equal(t, "hunter22", password)

	_, err = ReadPassword(bytes.NewReader(le(100)))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func noteGen() *rapid.Generator[record.Note] {
	return rapid.Custom(func(t *rapid.T) record.Note {
		return record.Note{
			Text: rapid.String().Draw(t, "text"),
			Info: rapid.String().Draw(t, "info"),
		}
	})
}

// nilIfEmpty mirrors the decoder, which never allocates for zero lengths.
func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestRecordRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rec := &record.Record{
			Username:    "user" + rapid.StringMatching(`[a-z0-9]{1,8}`).Draw(t, "username"),
			Password:    rapid.StringN(0, MaxPasswordLen, MaxPasswordLen).Draw(t, "password"),
			SecretNote:  nilIfEmpty(rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "secret")),
			Key:         nilIfEmpty(rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "key")),
			Notes:       nilIfEmpty(rapid.SliceOfN(noteGen(), 0, record.MaxNotes+1).Draw(t, "notes")),
			SharedNotes: nilIfEmpty(rapid.SliceOfN(noteGen(), 0, record.MaxNotes+1).Draw(t, "shared")),
		}
		var buf bytes.Buffer
		if err := EncodeRecord(&buf, rec); err != nil {
			t.Fatalf("encode: %v", err)
		}

		got, err := DecodeRecord(&buf, rec.Username)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		assert.Equal(t, rec, got)
	})
}
