package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	routeItineraryCreate = "/api/itinerary"
	routeItineraryEdit   = "/api/itinerary/edit"
	routeFileCreate      = "/api/file"
	routeFileDelete      = "/api/file/delete"
)

// TokenFunc supplies the bearer token for each request, so a refreshed login
// is picked up without rebuilding the transport.
type TokenFunc func() string

// HTTPTransport implements Transport against the tripweave REST API.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
	token   TokenFunc
	logger  *zap.Logger
}

type HTTPOption func(*HTTPTransport)

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(t *HTTPTransport) { t.client = client }
}

func WithTokenFunc(fn TokenFunc) HTTPOption {
	return func(t *HTTPTransport) { t.token = fn }
}

func WithTransportLogger(logger *zap.Logger) HTTPOption {
	return func(t *HTTPTransport) { t.logger = logger }
}

func NewHTTPTransport(baseURL string, opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) CreateItinerary(ctx context.Context, payload *ItineraryPayload) (*SubmitResponse, error) {
	out := &SubmitResponse{}
	if err := t.post(ctx, routeItineraryCreate, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *HTTPTransport) UpdateItinerary(ctx context.Context, sessionID string, payload *ItineraryPayload) (*SubmitResponse, error) {
	out := &SubmitResponse{}
	path := routeItineraryEdit + "/" + url.PathEscape(sessionID)
	if err := t.post(ctx, path, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *HTTPTransport) DeleteFiles(ctx context.Context, fileUUIDs []string) error {
	body := struct {
		FileIDsToDelete []string `json:"fileIdsToDelete"`
	}{FileIDsToDelete: fileUUIDs}
	return t.post(ctx, routeFileDelete, body, nil)
}

func (t *HTTPTransport) UploadFile(ctx context.Context, upload *FileUpload) error {
	return t.post(ctx, routeFileCreate, upload, nil)
}

// envelope mirrors the server's APIResponse wrapper.
type envelope struct {
	Status    string          `json:"status"`
	Code      int             `json:"code"`
	ErrorCode string          `json:"errorCode"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func (t *HTTPTransport) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != nil {
		if token := t.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		se := decodeStatusError(resp.StatusCode, payload)
		t.logger.Debug("Request rejected",
			zap.String("path", path),
			zap.Int("status", se.StatusCode),
			zap.String("errorCode", se.Code))
		return se
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func decodeStatusError(status int, payload []byte) *StatusError {
	se := &StatusError{StatusCode: status}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return se
	}
	se.Code = env.ErrorCode
	se.Message = env.Message

	if len(env.Data) > 0 {
		var data struct {
			ShortCode string `json:"shortCode"`
		}
		if err := json.Unmarshal(env.Data, &data); err == nil {
			se.ShortCode = data.ShortCode
		}
	}

	return se
}
