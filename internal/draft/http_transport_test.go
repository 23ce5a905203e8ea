package draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tripweave/pkg/utils"
)

func TestHTTPTransportCreateItinerary(t *testing.T) {
	var gotAuth string
	var gotBody ItineraryPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/itinerary", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"code": 200,
			"data": {
				"shortCode": "AB12CD",
				"agendaToFileMap": [{"agendaId": 7, "fileUuids": ["file-a"]}]
			}
		}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL, WithTokenFunc(func() string { return "token-123" }))

	resp, err := transport.CreateItinerary(context.Background(), &ItineraryPayload{SessionID: "session-1"})
	require.NoError(t, err)
	require.Equal(t, "Bearer token-123", gotAuth)
	require.Equal(t, "session-1", gotBody.SessionID)
	require.Equal(t, "AB12CD", resp.ShortCode)
	require.Equal(t, []AgendaFileMap{{AgendaID: 7, FileUUIDs: []string{"file-a"}}}, resp.AgendaToFileMap)
}

func TestHTTPTransportUpdateItineraryPath(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","code":200,"data":{"shortCode":"AB12CD"}}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL)

	resp, err := transport.UpdateItinerary(context.Background(), "session-1", &ItineraryPayload{})
	require.NoError(t, err)
	require.Equal(t, "/api/itinerary/edit/session-1", gotPath)
	require.Equal(t, "AB12CD", resp.ShortCode)
}

func TestHTTPTransportCredentialRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"error","code":403,"errorCode":"invalid-token","message":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL)

	_, err := transport.CreateItinerary(context.Background(), &ItineraryPayload{})
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.True(t, se.AuthRejected())
	require.Equal(t, utils.CodeInvalidToken, se.Code)
	require.Equal(t, http.StatusForbidden, se.StatusCode)
}

func TestHTTPTransportErrorBodyShortCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"status":"error","code":413,"message":"File too large","data":{"shortCode":"AB12CD"}}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL)

	err := transport.UploadFile(context.Background(), &FileUpload{UUID: "file-a", AgendaID: 7})
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "AB12CD", se.ShortCode)
	require.False(t, se.AuthRejected())
}

func TestHTTPTransportMalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL)

	err := transport.DeleteFiles(context.Background(), []string{"file-a"})
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadGateway, se.StatusCode)
	require.Empty(t, se.Code)
}

func TestHTTPTransportDeleteFilesBody(t *testing.T) {
	var gotBody struct {
		FileIDsToDelete []string `json:"fileIdsToDelete"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/file/delete", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"status":"success","code":200}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL)

	require.NoError(t, transport.DeleteFiles(context.Background(), []string{"file-a", "file-b"}))
	require.Equal(t, []string{"file-a", "file-b"}, gotBody.FileIDsToDelete)
}

func TestHTTPTransportSkipsAuthHeaderWhenNoToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status":"success","code":200}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(srv.URL)

	require.NoError(t, transport.UploadFile(context.Background(), &FileUpload{UUID: "file-a"}))
	require.Empty(t, gotAuth)
}
