package draft

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"tripweave/pkg/utils"
)

func TestBuildCorrelationTable(t *testing.T) {
	tests := []struct {
		name    string
		entries []AgendaFileMap
		want    map[string]int64
	}{
		{
			name:    "empty input",
			entries: nil,
			want:    map[string]int64{},
		},
		{
			name: "multiple agendas",
			entries: []AgendaFileMap{
				{AgendaID: 1, FileUUIDs: []string{"a", "b"}},
				{AgendaID: 2, FileUUIDs: []string{"c"}},
			},
			want: map[string]int64{"a": 1, "b": 1, "c": 2},
		},
		{
			name: "duplicate uuid resolves to last entry",
			entries: []AgendaFileMap{
				{AgendaID: 1, FileUUIDs: []string{"a"}},
				{AgendaID: 2, FileUUIDs: []string{"a"}},
			},
			want: map[string]int64{"a": 2},
		},
		{
			name: "agenda without files contributes nothing",
			entries: []AgendaFileMap{
				{AgendaID: 1},
				{AgendaID: 2, FileUUIDs: []string{"x"}},
			},
			want: map[string]int64{"x": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BuildCorrelationTable(tt.entries))
		})
	}
}

func TestUploadAllEmptyJobs(t *testing.T) {
	c := NewCorrelator(&fakeTransport{}, 0, nil)
	require.NoError(t, c.UploadAll(context.Background(), nil))
}

func TestUploadAllMarksOutcomes(t *testing.T) {
	transport := &fakeTransport{
		uploadFn: func(up *FileUpload) error {
			if up.UUID == "bad" {
				return &StatusError{StatusCode: http.StatusInternalServerError, Message: "boom"}
			}
			return nil
		},
	}
	c := NewCorrelator(transport, 2, nil)

	good := &PendingFile{UUID: "good", Status: FileStatusPending}
	bad := &PendingFile{UUID: "bad", Status: FileStatusPending}

	err := c.UploadAll(context.Background(), []UploadJob{
		{File: good, AgendaID: 7},
		{File: bad, AgendaID: 8},
	})

	require.Error(t, err)
	require.Equal(t, FileStatusUploaded, good.Status)
	require.Equal(t, int64(7), good.AgendaID)
	require.Equal(t, FileStatusError, bad.Status)
	require.NotEmpty(t, bad.Error)
	require.Zero(t, bad.AgendaID)
}

func TestUploadAllAuthDominatesOtherFailures(t *testing.T) {
	transport := &fakeTransport{
		uploadFn: func(up *FileUpload) error {
			switch up.UUID {
			case "auth":
				return &StatusError{StatusCode: http.StatusForbidden, Code: utils.CodeInvalidToken}
			case "short":
				return &StatusError{StatusCode: http.StatusBadRequest, ShortCode: "XY99ZZ"}
			default:
				return nil
			}
		},
	}
	c := NewCorrelator(transport, 1, nil)

	jobs := []UploadJob{
		{File: &PendingFile{UUID: "short"}, AgendaID: 1},
		{File: &PendingFile{UUID: "auth"}, AgendaID: 2},
		{File: &PendingFile{UUID: "ok"}, AgendaID: 3},
	}

	err := c.UploadAll(context.Background(), jobs)
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestUploadAllPrefersShortCodeFailure(t *testing.T) {
	transport := &fakeTransport{
		uploadFn: func(up *FileUpload) error {
			switch up.UUID {
			case "short":
				return &StatusError{StatusCode: http.StatusBadRequest, ShortCode: "XY99ZZ"}
			case "plain":
				return errors.New("network down")
			default:
				return nil
			}
		},
	}
	c := NewCorrelator(transport, 1, nil)

	jobs := []UploadJob{
		{File: &PendingFile{UUID: "plain"}, AgendaID: 1},
		{File: &PendingFile{UUID: "short"}, AgendaID: 2},
	}

	err := c.UploadAll(context.Background(), jobs)
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "XY99ZZ", se.ShortCode)
}

func TestUploadAllAwaitsEveryJobDespiteFailures(t *testing.T) {
	var attempts int32
	transport := &fakeTransport{
		uploadFn: func(*FileUpload) error {
			atomic.AddInt32(&attempts, 1)
			return errors.New("always failing")
		},
	}
	c := NewCorrelator(transport, 2, nil)

	jobs := make([]UploadJob, 6)
	for i := range jobs {
		jobs[i] = UploadJob{File: &PendingFile{UUID: strconv.Itoa(i)}, AgendaID: int64(i + 1)}
	}

	err := c.UploadAll(context.Background(), jobs)
	require.Error(t, err)
	require.Equal(t, int32(6), atomic.LoadInt32(&attempts))
}

func TestUploadAllBoundsConcurrency(t *testing.T) {
	const limit = 2

	var (
		mu      sync.Mutex
		current int
		peak    int
	)
	gate := make(chan struct{})

	transport := &fakeTransport{
		uploadFn: func(*FileUpload) error {
			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()

			<-gate

			mu.Lock()
			current--
			mu.Unlock()
			return nil
		},
	}
	c := NewCorrelator(transport, limit, nil)

	jobs := make([]UploadJob, 5)
	for i := range jobs {
		jobs[i] = UploadJob{File: &PendingFile{UUID: strconv.Itoa(i)}, AgendaID: 1}
	}

	done := make(chan error, 1)
	go func() { done <- c.UploadAll(context.Background(), jobs) }()

	close(gate)
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.LessOrEqual(t, peak, limit)
}
