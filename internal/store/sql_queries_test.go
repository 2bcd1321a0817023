// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func Test_buildAppendEventQuery_Postgres(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	event := models.Event{Username: "alice12", Action: models.EventNoteAdded, Details: "note 0", CreatedAt: now}

	query, args, err := buildAppendEventQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), event)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into note_events")
	assert.Contains(t, q, "(username,action,details,created_at)")
	assert.Contains(t, query, "$4")
	assert.Equal(t, []any{"alice12", "note_added", "note 0", now}, args)
}

func Test_buildListEventsQuery_SQLite(t *testing.T) {
	query, args, err := buildListEventsQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), "alice12", 20)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select event_id, username, action, details, created_at from note_events")
	assert.Contains(t, q, "where username = ?")
	assert.Contains(t, q, "order by created_at desc, event_id desc")
	assert.Contains(t, q, "limit 20")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{"alice12"}, args)
}

func Test_buildDeleteEventsBeforeQuery(t *testing.T) {
	before := time.Now()

	query, args, err := buildDeleteEventsBeforeQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), before)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM note_events WHERE created_at < $1", query)
	assert.Equal(t, []any{before}, args)
}
