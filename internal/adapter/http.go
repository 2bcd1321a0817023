package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme means http.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/user/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/user/login and keeps the bearer token from the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, path, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, Username: user.Login}, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.NoteSummary, error) {
	var notes []models.NoteSummary
	if err := h.get(ctx, "/api/notes", &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) AddNote(ctx context.Context, note models.NoteRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(note).
		Post("/api/notes")
	if err != nil {
		return fmt.Errorf("add note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int) (models.Note, error) {
	var note models.Note
	if err := h.get(ctx, notePath("/api/notes", noteID), &note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int) error {
	return h.delete(ctx, notePath("/api/notes", noteID))
}

func (h *httpServerAdapter) ShareNote(ctx context.Context, noteID int, req models.ShareRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post(notePath("/api/notes", noteID) + "/share")
	if err != nil {
		return fmt.Errorf("share note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListSharedNotes(ctx context.Context) ([]models.NoteSummary, error) {
	var notes []models.NoteSummary
	if err := h.get(ctx, "/api/shared", &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) GetSharedNote(ctx context.Context, noteID int) (models.Note, error) {
	var note models.Note
	if err := h.get(ctx, notePath("/api/shared", noteID), &note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteSharedNote(ctx context.Context, noteID int) error {
	return h.delete(ctx, notePath("/api/shared", noteID))
}

func (h *httpServerAdapter) PutSecretNote(ctx context.Context, req models.SecretNoteRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Put("/api/secret")
	if err != nil {
		return fmt.Errorf("put secret note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetSecretNote(ctx context.Context) (models.SecretNote, error) {
	var secret models.SecretNote
	if err := h.get(ctx, "/api/secret", &secret); err != nil {
		return models.SecretNote{}, err
	}

	return secret, nil
}

func (h *httpServerAdapter) ListEvents(ctx context.Context, limit uint64) ([]models.Event, error) {
	var events []models.Event

	req := h.authedRequest(ctx).SetResult(&events)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/user/events")
	if err != nil {
		return nil, fmt.Errorf("list events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return events, nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) delete(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

func notePath(collection string, noteID int) string {
	return collection + "/" + strconv.Itoa(noteID)
}
