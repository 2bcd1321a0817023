package store

import (
	"bufio"
	"bytes"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/record"
)

// recordFileMode is the permission set of newly written record files.
const recordFileMode = 0o600

// recordFileStorage is the filesystem implementation of [RecordStorage]:
// one binary record file per username inside a single directory.
//
// It performs no locking. Concurrent writers of the same username race with
// last-writer-wins semantics; the service layer serializes access.
type recordFileStorage struct {
	paths  PathResolver
	logger *logger.Logger
}

// NewRecordFileStorage constructs a [RecordStorage] rooted at baseDir. The
// directory is created if it does not exist.
func NewRecordFileStorage(baseDir string, logger *logger.Logger) (RecordStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty records directory", ErrIOFailure)
	}

	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: creating records directory: %w", ErrIOFailure, err)
	}

	logger.Debug().Str("dir", baseDir).Msg("creating record file storage")
	return &recordFileStorage{
		paths:  NewPathResolver(baseDir),
		logger: logger,
	}, nil
}

// Exists implements [RecordStorage]. A record exists when its file can be
// opened for both reading and writing.
func (s *recordFileStorage) Exists(ctx context.Context, username string) bool {
	f, err := os.OpenFile(s.paths.Resolve(username), os.O_RDWR, 0)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Debug().Err(err).Str("username", username).Msg("record is not accessible")
		}
		return false
	}
	f.Close()

	return true
}

// Create implements [RecordStorage]. It writes the minimal record for a new
// account, silently replacing any existing file at the same path.
func (s *recordFileStorage) Create(ctx context.Context, username, password string) error {
	return s.Save(ctx, record.New(username, password))
}

// CheckPassword implements [RecordStorage]. Only the password prefix of the
// file is read.
func (s *recordFileStorage) CheckPassword(ctx context.Context, username, candidate string) (bool, error) {
	log := logger.FromContext(ctx)

	f, err := s.open(username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("error opening record for password check")
		return false, err
	}
	defer f.Close()

	password, err := ReadPassword(bufio.NewReader(f))
	if err != nil {
		log.Err(err).Str("username", username).Msg("error reading stored password")
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(candidate)) == 1, nil
}

// Load implements [RecordStorage].
func (s *recordFileStorage) Load(ctx context.Context, username string) (*record.Record, error) {
	log := logger.FromContext(ctx)

	f, err := s.open(username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("error opening record")
		return nil, err
	}
	defer f.Close()

	rec, err := DecodeRecord(bufio.NewReader(f), username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("error decoding record")
		return nil, err
	}

	return rec, nil
}

// Save implements [RecordStorage]. The record is encoded in memory, written
// to a temporary file next to the record and renamed over it, so a reader
// sees either the old or the new record in full.
func (s *recordFileStorage) Save(ctx context.Context, rec *record.Record) error {
	log := logger.FromContext(ctx)

	var buf bytes.Buffer
	if err := EncodeRecord(&buf, rec); err != nil {
		log.Err(err).Str("username", rec.Username).Msg("error encoding record")
		return err
	}

	if err := writeFileAtomic(s.paths.BaseDir(), s.paths.Resolve(rec.Username), buf.Bytes()); err != nil {
		log.Err(err).Str("username", rec.Username).Msg("error writing record")
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return nil
}

// writeFileAtomic replaces path with data. Temporary files start with a dot,
// which no valid username does.
func writeFileAtomic(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(recordFileMode); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (s *recordFileStorage) open(username string) (*os.File, error) {
	f, err := os.Open(s.paths.Resolve(username))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, username)
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return f, nil
}
