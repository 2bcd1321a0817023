package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/record"
	"github.com/MKhiriev/go-note-keeper/models"
)

func TestAddSecretNote_DecodesHexKey(t *testing.T) {
	mocks, h := newTestServices(t)
	mocks.expectToken("alice12")
	mocks.notes.EXPECT().AddSecretNote(gomock.Any(), "alice12", "flag", []byte{0x13, 0x37}).Return(nil)

	body := strings.NewReader(`{"note":"flag","key":"1337"}`)
	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/secret", body), "alice12")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddSecretNote_InvalidHexKey(t *testing.T) {
	mocks, h := newTestServices(t)
	mocks.expectToken("alice12")

	body := strings.NewReader(`{"note":"flag","key":"zz"}`)
	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/secret", body), "alice12")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rec.Body.String()))
}

func TestAddSecretNote_RejectsWhatTheValidatorRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty key", `{"note":"flag","key":""}`},
		{"leading space", `{"note":"flag","key":" 1337"}`},
		{"trailing newline", `{"note":"flag","key":"1337\n"}`},
		{"odd length", `{"note":"flag","key":"133"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newTestServices(t)
			mocks.expectToken("alice12")
			// AddSecretNote must not be reached

			rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/secret", strings.NewReader(tt.body)), "alice12")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestShowSecretNote(t *testing.T) {
	mocks, h := newTestServices(t)
	mocks.expectToken("alice12")
	mocks.notes.EXPECT().ShowSecretNote(gomock.Any(), "alice12").Return(models.SecretNote{Note: "flag"}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/secret", nil), "alice12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"note":"flag"}`, rec.Body.String())
}

func TestShowSecretNote_Empty(t *testing.T) {
	mocks, h := newTestServices(t)
	mocks.expectToken("alice12")
	mocks.notes.EXPECT().ShowSecretNote(gomock.Any(), "alice12").Return(models.SecretNote{}, record.ErrDecryptUnavailable)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/secret", nil), "alice12")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgSecretNoteEmpty, strings.TrimSpace(rec.Body.String()))
}
