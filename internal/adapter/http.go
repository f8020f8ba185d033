package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is taken from the
// response body, falling back to the Authorization response header, and
// stored via SetToken. Returns an error if the request fails, the server
// returns a non-2xx status, or no token is present.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&authResp).
		Post("/api/user/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = h.storeToken(&authResp, resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	return authResp, nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/login. On success the bearer token is taken from the
// response body, falling back to the Authorization response header, and
// stored via SetToken. Returns an error if the request fails, the server
// returns a non-2xx status, or no token is present.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&authResp).
		Post("/api/user/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = h.storeToken(&authResp, resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	return authResp, nil
}

// UpsertPersons implements [ServerAdapter]. It POSTs the contact batch to
// POST /api/persons/. Requires a valid bearer token. Returns an error if
// the request or response mapping fails.
func (h *httpServerAdapter) UpsertPersons(ctx context.Context, req models.UpsertRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/persons/")
	if err != nil {
		return fmt.Errorf("upsert persons request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListPersons implements [ServerAdapter]. It POSTs the list criteria to
// POST /api/persons/list and decodes the matched contacts from the response.
// Requires a valid bearer token. Returns an error if the request, response
// mapping, or JSON decoding fails.
func (h *httpServerAdapter) ListPersons(ctx context.Context, req models.ListRequest) ([]models.Person, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/persons/list")
	if err != nil {
		return nil, fmt.Errorf("list persons request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list persons response: %w", err)
	}

	return lr.Persons, nil
}

// DeletePersons implements [ServerAdapter]. It sends the delete criteria to
// DELETE /api/persons/. Requires a valid bearer token. Returns an error if
// the request or response mapping fails.
func (h *httpServerAdapter) DeletePersons(ctx context.Context, req models.DeletePersonRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Delete("/api/persons/")
	if err != nil {
		return fmt.Errorf("delete persons request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// storeToken resolves the bearer token from the decoded auth response body or
// the Authorization header and saves it on the adapter.
func (h *httpServerAdapter) storeToken(authResp *models.AuthResponse, resp *resty.Response) error {
	if authResp.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return err
		}
		authResp.Token = token
	}

	h.SetToken(authResp.Token)
	return nil
}
