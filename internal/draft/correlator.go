package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultUploadLimit caps concurrent file uploads per reconciliation cycle.
const DefaultUploadLimit = 4

// UploadJob pairs a pending file with its resolved owning agenda id.
type UploadJob struct {
	File     *PendingFile
	AgendaID int64
}

// BuildCorrelationTable flattens the server's agenda-to-file rows into a
// lookup from file uuid to agenda id. Pure function of its input; a uuid
// listed under several agenda ids resolves to the last one seen.
func BuildCorrelationTable(entries []AgendaFileMap) map[string]int64 {
	table := make(map[string]int64)
	for _, entry := range entries {
		for _, uuid := range entry.FileUUIDs {
			table[uuid] = entry.AgendaID
		}
	}
	return table
}

// Correlator drives the per-file upload fan-out and folds the outcomes into
// a single classified error.
type Correlator struct {
	transport Transport
	limit     int
	logger    *zap.Logger
}

func NewCorrelator(transport Transport, limit int, logger *zap.Logger) *Correlator {
	if limit <= 0 {
		limit = DefaultUploadLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Correlator{
		transport: transport,
		limit:     limit,
		logger:    logger,
	}
}

// UploadAll runs every job through the file endpoint with bounded
// concurrency. A failed upload never cancels in-flight siblings; every job is
// awaited and failures are collected before the aggregate verdict.
func (c *Correlator) UploadAll(ctx context.Context, jobs []UploadJob) error {
	if len(jobs) == 0 {
		return nil
	}

	var (
		mu       sync.Mutex
		failures []error
	)

	var g errgroup.Group
	g.SetLimit(c.limit)

	for _, job := range jobs {
		job := job
		job.File.Status = FileStatusUploading

		g.Go(func() error {
			err := c.transport.UploadFile(ctx, &FileUpload{
				UUID:        job.File.UUID,
				Name:        job.File.Name,
				MimeType:    job.File.MimeType,
				SizeInBytes: job.File.SizeInBytes,
				Blob:        job.File.Blob,
				AgendaID:    job.AgendaID,
			})
			if err != nil {
				job.File.Status = FileStatusError
				job.File.Error = err.Error()
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
				return nil
			}

			job.File.Status = FileStatusUploaded
			job.File.AgendaID = job.AgendaID
			return nil
		})
	}

	// Workers always return nil; failures travel through the slice.
	_ = g.Wait()

	return c.reduce(failures)
}

// reduce picks the dominant failure: credential rejection first, then any
// error whose body exposes a short code, then a generic upload failure.
func (c *Correlator) reduce(failures []error) error {
	if len(failures) == 0 {
		return nil
	}

	for _, err := range failures {
		var se *StatusError
		if errors.As(err, &se) && se.AuthRejected() {
			return fmt.Errorf("file upload rejected: %w", ErrAuthRequired)
		}
	}

	for _, err := range failures {
		var se *StatusError
		if errors.As(err, &se) && se.ShortCode != "" {
			return err
		}
	}

	c.logger.Warn("File uploads failed", zap.Int("count", len(failures)))
	return fmt.Errorf("file upload failed: %w", failures[0])
}
