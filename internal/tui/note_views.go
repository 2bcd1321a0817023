package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

const listTextWidth = 48

func renderNoteList(notes []models.NoteSummary) string {
	if len(notes) == 0 {
		return "No notes"
	}

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{idCell(n.ID), fitText(n.Note, listTextWidth)})
	}

	return renderTable([]string{"ID", "Note"}, rows)
}

func renderNote(note models.Note) string {
	var b strings.Builder
	b.WriteString("Note: ")
	b.WriteString(note.Note)
	b.WriteString("\nInfo: ")
	b.WriteString(note.Info)

	return b.String()
}

func renderEvents(events []models.Event) string {
	if len(events) == 0 {
		return "No activity yet"
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(e.Action),
			fitText(e.Details, listTextWidth),
		})
	}

	return renderTable([]string{"Time", "Action", "Details"}, rows)
}
