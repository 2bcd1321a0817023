package validators

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldLogin     = "login"
	FieldPassword  = "password"
	FieldRecipient = "recipient"
	FieldKey       = "key"
)

// NotesValidator validates request models of the note API.
type NotesValidator struct{}

func NewNotesValidator() Validator {
	return &NotesValidator{}
}

// Validate implements [Validator]. With no fields every rule of the model is
// checked.
func (v *NotesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(value)
	case *models.ShareRequest:
		return v.validateShareRequest(*value)

	case models.SecretNoteRequest:
		return v.validateSecretNoteRequest(value)
	case *models.SecretNoteRequest:
		return v.validateSecretNoteRequest(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *NotesValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		return ValidateCredentials(user.Login, user.Password)
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if !IsValidIdentifier(user.Login) {
				return fmt.Errorf("%w: %w", ErrInvalidLogin, ErrInvalidIdentifier)
			}
		case FieldPassword:
			if !IsValidIdentifier(user.Password) {
				return fmt.Errorf("%w: %w", ErrInvalidPassword, ErrInvalidIdentifier)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *NotesValidator) validateShareRequest(req models.ShareRequest) error {
	if req.Recipient == "" {
		return ErrEmptyRecipient
	}
	if !IsValidIdentifier(req.Recipient) {
		return fmt.Errorf("%w: %w", ErrInvalidLogin, ErrInvalidIdentifier)
	}

	return nil
}

// validateSecretNoteRequest requires the key to be hex as sent. No
// whitespace is trimmed, so a key that passes always decodes.
func (v *NotesValidator) validateSecretNoteRequest(req models.SecretNoteRequest) error {
	if req.Key == "" {
		return ErrEmptyKey
	}
	if _, err := hex.DecodeString(req.Key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return nil
}
