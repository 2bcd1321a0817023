// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventAction names a kind of user activity recorded in the journal.
type EventAction string

const (
	EventRegistered         EventAction = "registered"
	EventLoggedIn           EventAction = "logged_in"
	EventNoteAdded          EventAction = "note_added"
	EventNoteDeleted        EventAction = "note_deleted"
	EventNoteShared         EventAction = "note_shared"
	EventNoteReceived       EventAction = "note_received"
	EventSharedNoteDeleted  EventAction = "shared_note_deleted"
	EventSecretNoteReplaced EventAction = "secret_note_replaced"
)

// Event is one row of the activity journal.
//
// The journal is an audit trail only. Record files stay the single source of
// truth for note state and are never rebuilt from events.
type Event struct {
	// EventID is assigned by the database.
	EventID int64 `json:"-"`

	// Username is the user whose record the action touched.
	Username string `json:"-"`

	Action EventAction `json:"action"`

	// Details is a short free-form description, e.g. the note index or the
	// other side of a share.
	Details string `json:"details"`

	CreatedAt time.Time `json:"created_at"`
}
