// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// notesService is the concrete implementation of NotesService. Each call is
// one unit of work on the record of a user: lock, load, apply, save.
type notesService struct {
	records store.RecordStorage
	journal journal
	locker  *userLocker

	logger *logger.Logger
}

// NewNotesService constructs a NotesService over the given record storage.
func NewNotesService(records store.RecordStorage, events store.EventRepository, logger *logger.Logger) NotesService {
	return newNotesService(records, events, newUserLocker(), logger)
}

func newNotesService(records store.RecordStorage, events store.EventRepository, locker *userLocker, logger *logger.Logger) *notesService {
	return &notesService{
		records: records,
		journal: journal{events: events},
		locker:  locker,
		logger:  logger,
	}
}

func (s *notesService) ListNotes(ctx context.Context, username string) ([]models.NoteSummary, error) {
	var summaries []models.NoteSummary
	err := s.view(ctx, username, func(rec *record.Record) error {
		summaries = summarize(rec.ListNotes())
		return nil
	})

	return summaries, err
}

func (s *notesService) AddNote(ctx context.Context, username string, note models.NoteRequest) error {
	var noteID int
	err := s.update(ctx, username, func(rec *record.Record) error {
		noteID = len(rec.Notes)
		return rec.AddNote(note.Note, note.Info)
	})
	if err != nil {
		return err
	}

	s.journal.record(ctx, username, models.EventNoteAdded, "note #%d added", noteID)
	return nil
}

func (s *notesService) GetNote(ctx context.Context, username string, noteID int) (models.Note, error) {
	var note models.Note
	err := s.view(ctx, username, func(rec *record.Record) error {
		n, err := rec.GetNote(noteID)
		if err != nil {
			return err
		}

		note = models.Note{ID: noteID, Note: n.Text, Info: n.Info}
		return nil
	})

	return note, err
}

func (s *notesService) DeleteNote(ctx context.Context, username string, noteID int) error {
	err := s.update(ctx, username, func(rec *record.Record) error {
		return rec.DeleteNote(noteID)
	})
	if err != nil {
		return err
	}

	s.journal.record(ctx, username, models.EventNoteDeleted, "note #%d deleted", noteID)
	return nil
}

// ShareNote copies note noteID of owner into the shared notes of recipient.
//
// Returns store.ErrRecordNotFound if the recipient has no record. Both
// records are locked in lexical username order; sharing with oneself works
// on a single loaded record.
func (s *notesService) ShareNote(ctx context.Context, owner string, noteID int, recipient string) error {
	log := logger.FromContext(ctx)

	if owner == recipient {
		err := s.update(ctx, owner, func(rec *record.Record) error {
			return rec.ShareNote(noteID, rec)
		})
		if err != nil {
			return err
		}

		s.journal.record(ctx, owner, models.EventNoteShared, "note #%d shared with %s", noteID, recipient)
		return nil
	}

	if !s.records.Exists(ctx, recipient) {
		log.Error().Str("owner", owner).Str("recipient", recipient).Msg("recipient does not exist")
		return fmt.Errorf("%w: %s", store.ErrRecordNotFound, recipient)
	}

	unlock := s.locker.Lock(owner, recipient)
	defer unlock()

	ownerRec, err := s.records.Load(ctx, owner)
	if err != nil {
		return fmt.Errorf("error loading record of %s: %w", owner, err)
	}
	recipientRec, err := s.records.Load(ctx, recipient)
	if err != nil {
		return fmt.Errorf("error loading record of %s: %w", recipient, err)
	}

	if err = ownerRec.ShareNote(noteID, recipientRec); err != nil {
		log.Err(err).Str("owner", owner).Str("recipient", recipient).Int("note_id", noteID).Msg("note was not shared")
		return err
	}

	if err = s.records.Save(ctx, recipientRec); err != nil {
		return fmt.Errorf("error saving record of %s: %w", recipient, err)
	}
	if err = s.records.Save(ctx, ownerRec); err != nil {
		return fmt.Errorf("error saving record of %s: %w", owner, err)
	}

	s.journal.record(ctx, owner, models.EventNoteShared, "note #%d shared with %s", noteID, recipient)
	s.journal.record(ctx, recipient, models.EventNoteReceived, "note received from %s", owner)

	return nil
}

func (s *notesService) ListSharedNotes(ctx context.Context, username string) ([]models.NoteSummary, error) {
	var summaries []models.NoteSummary
	err := s.view(ctx, username, func(rec *record.Record) error {
		summaries = summarize(rec.ListSharedNotes())
		return nil
	})

	return summaries, err
}

func (s *notesService) GetSharedNote(ctx context.Context, username string, noteID int) (models.Note, error) {
	var note models.Note
	err := s.view(ctx, username, func(rec *record.Record) error {
		n, err := rec.GetSharedNote(noteID)
		if err != nil {
			return err
		}

		note = models.Note{ID: noteID, Note: n.Text, Info: n.Info}
		return nil
	})

	return note, err
}

func (s *notesService) DeleteSharedNote(ctx context.Context, username string, noteID int) error {
	err := s.update(ctx, username, func(rec *record.Record) error {
		return rec.DeleteSharedNote(noteID)
	})
	if err != nil {
		return err
	}

	s.journal.record(ctx, username, models.EventSharedNoteDeleted, "shared note #%d deleted", noteID)
	return nil
}

// AddSecretNote replaces the secret note of username. The key is repeated to
// the length of the note; the record keeps the ciphertext and the expanded
// key.
func (s *notesService) AddSecretNote(ctx context.Context, username string, note string, key []byte) error {
	if len(key) == 0 {
		logger.FromContext(ctx).Error().Str("username", username).Msg("empty secret note key")
		return fmt.Errorf("%w: empty key", ErrInvalidDataProvided)
	}

	expanded := record.ExpandKey(key, len(note))
	ciphertext := record.XOR([]byte(note), expanded)

	err := s.update(ctx, username, func(rec *record.Record) error {
		rec.AddSecretNote(ciphertext, expanded)
		return nil
	})
	if err != nil {
		return err
	}

	s.journal.record(ctx, username, models.EventSecretNoteReplaced, "secret note of %d bytes stored", len(ciphertext))
	return nil
}

func (s *notesService) ShowSecretNote(ctx context.Context, username string) (models.SecretNote, error) {
	var secret models.SecretNote
	err := s.view(ctx, username, func(rec *record.Record) error {
		note, err := rec.ShowSecretNote()
		if err != nil {
			return err
		}

		secret = models.SecretNote{Note: note}
		return nil
	})

	return secret, err
}

// view runs fn on the loaded record of username without saving it.
func (s *notesService) view(ctx context.Context, username string, fn func(*record.Record) error) error {
	unlock := s.locker.Lock(username)
	defer unlock()

	rec, err := s.records.Load(ctx, username)
	if err != nil {
		return fmt.Errorf("error loading record of %s: %w", username, err)
	}

	return fn(rec)
}

// update runs fn on the loaded record of username and saves the record if fn
// succeeds.
func (s *notesService) update(ctx context.Context, username string, fn func(*record.Record) error) error {
	unlock := s.locker.Lock(username)
	defer unlock()

	rec, err := s.records.Load(ctx, username)
	if err != nil {
		return fmt.Errorf("error loading record of %s: %w", username, err)
	}

	if err = fn(rec); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("record operation failed")
		return err
	}

	if err = s.records.Save(ctx, rec); err != nil {
		return fmt.Errorf("error saving record of %s: %w", username, err)
	}

	return nil
}

func summarize(notes []record.Note) []models.NoteSummary {
	summaries := make([]models.NoteSummary, 0, len(notes))
	for i, note := range notes {
		summaries = append(summaries, models.NoteSummary{ID: i, Note: note.Text})
	}

	return summaries
}
