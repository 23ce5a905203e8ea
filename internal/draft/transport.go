package draft

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripweave/pkg/utils"
)

// ErrAuthRequired is raised when any request inside a reconciliation cycle is
// rejected for a missing or expired credential. The caller should force
// re-authentication and let the user retry the whole operation.
var ErrAuthRequired = errors.New("authentication required")

// StatusError is a non-success response decoded into its envelope fields.
// ShortCode is set when the error body carries one, which means the itinerary
// itself was persisted before the failing call.
type StatusError struct {
	StatusCode int
	Code       string
	ShortCode  string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// AuthRejected reports whether the response is the uniform credential
// rejection every endpoint emits.
func (e *StatusError) AuthRejected() bool {
	return e.StatusCode == http.StatusForbidden && e.Code == utils.CodeInvalidToken
}

// AgendaFileMap is one row of the identifier-correlation table the server
// returns after an itinerary submit: the attachment uuids owned by one
// persisted agenda item.
type AgendaFileMap struct {
	AgendaID  int64    `json:"agendaId"`
	FileUUIDs []string `json:"fileUuids"`
}

type SubmitResponse struct {
	ShortCode       string          `json:"shortCode"`
	AgendaToFileMap []AgendaFileMap `json:"agendaToFileMap"`
}

// FileUpload is the metadata submitted to the file-creation endpoint once the
// owning agenda id has been resolved.
type FileUpload struct {
	UUID        string  `json:"uuid"`
	Name        string  `json:"name"`
	MimeType    string  `json:"mimeType"`
	SizeInBytes int64   `json:"sizeInBytes"`
	Blob        *string `json:"blob,omitempty"`
	AgendaID    int64   `json:"agendaId"`
}

// Transport is the capability the reconciler drives. Implementations return
// *StatusError for non-success responses so failures can be classified.
type Transport interface {
	CreateItinerary(ctx context.Context, payload *ItineraryPayload) (*SubmitResponse, error)
	UpdateItinerary(ctx context.Context, sessionID string, payload *ItineraryPayload) (*SubmitResponse, error)
	DeleteFiles(ctx context.Context, fileUUIDs []string) error
	UploadFile(ctx context.Context, upload *FileUpload) error
}
