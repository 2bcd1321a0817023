package models

// NoteRequest is the body of an add-note request.
type NoteRequest struct {
	Note string `json:"note"`
	Info string `json:"info"`
}

// NoteSummary is one entry of a note listing. Only the note text is shown,
// as in the original "list notes" menu; the info is fetched per note.
type NoteSummary struct {
	ID   int    `json:"id"`
	Note string `json:"note"`
}

// Note is a single note with its info.
type Note struct {
	ID   int    `json:"id"`
	Note string `json:"note"`
	Info string `json:"info"`
}

// ShareRequest is the body of a share-note request.
type ShareRequest struct {
	// Recipient is the username that receives a copy of the note.
	Recipient string `json:"recipient"`
}

// SecretNoteRequest replaces the secret note of a user.
type SecretNoteRequest struct {
	// Note is the plaintext secret note.
	Note string `json:"note"`

	// Key is the hex-encoded XOR key. It is repeated to cover the note.
	Key string `json:"key"`
}

// SecretNote is a decrypted secret note.
type SecretNote struct {
	Note string `json:"note"`
}
