package draft

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ErrorKind string

const (
	// ErrorKindAuth: a credential was rejected at some stage. Nothing partial
	// should be assumed usable.
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindItinerary: the itinerary request itself failed; no short code
	// exists.
	ErrorKindItinerary ErrorKind = "itinerary"
	// ErrorKindFile: the itinerary was persisted (a short code exists) but at
	// least one attachment upload failed afterwards.
	ErrorKindFile ErrorKind = "file"
)

// Result is the classified outcome of a create or update cycle.
type Result struct {
	IsSuccess bool
	Error     ErrorKind
	ShortCode string
}

type Stage string

const (
	StageStoringItinerary Stage = "Storing Itinerary"
	StageUploadingFiles   Stage = "Uploading Files"
	StageCompleted        Stage = "Completed"
)

type Option func(*Reconciler)

// WithUploadLimit bounds the file-upload fan-out width.
func WithUploadLimit(limit int) Option {
	return func(r *Reconciler) { r.uploadLimit = limit }
}

// WithStageFunc installs a progress callback for UI loading states.
func WithStageFunc(fn func(Stage)) Option {
	return func(r *Reconciler) { r.stageFn = fn }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Reconciler) { r.logger = logger }
}

// Reconciler turns an in-memory draft into wire payloads, submits them
// through the injected transport and classifies the outcome. It never
// mutates draft state beyond the documented pending-file lifecycle.
type Reconciler struct {
	transport   Transport
	correlator  *Correlator
	uploadLimit int
	stageFn     func(Stage)
	logger      *zap.Logger
}

func NewReconciler(transport Transport, opts ...Option) *Reconciler {
	r := &Reconciler{
		transport: transport,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.correlator = NewCorrelator(transport, r.uploadLimit, r.logger)
	return r
}

// Create submits a new itinerary and uploads every pending file resolved
// through the returned correlation table.
func (r *Reconciler) Create(ctx context.Context, d *Draft) Result {
	r.stage(StageStoringItinerary)

	resp, err := r.transport.CreateItinerary(ctx, BuildPayload(d))
	if err != nil {
		return classifySubmit(err)
	}

	r.stage(StageUploadingFiles)

	table := BuildCorrelationTable(resp.AgendaToFileMap)
	if err := r.correlator.UploadAll(ctx, r.createJobs(d, table)); err != nil {
		return classifyUpload(err)
	}

	r.stage(StageCompleted)
	return Result{IsSuccess: true, ShortCode: resp.ShortCode}
}

// Update edits an existing itinerary addressed by its session id. Flagged
// file deletions run first and a credential rejection there aborts the cycle
// before the main submit; afterwards only attachments flagged to-insert are
// uploaded.
func (r *Reconciler) Update(ctx context.Context, d *Draft) Result {
	r.stage(StageStoringItinerary)

	if res, ok := r.deleteFlaggedFiles(ctx, d); !ok {
		return res
	}

	resp, err := r.transport.UpdateItinerary(ctx, d.SessionID, BuildPayload(d))
	if err != nil {
		return classifySubmit(err)
	}

	r.stage(StageUploadingFiles)

	table := BuildCorrelationTable(resp.AgendaToFileMap)
	if err := r.correlator.UploadAll(ctx, r.updateJobs(d, table)); err != nil {
		return classifyUpload(err)
	}

	r.stage(StageCompleted)
	return Result{IsSuccess: true, ShortCode: resp.ShortCode}
}

// deleteFlaggedFiles fires one deletion request per agenda item carrying
// files to delete. Only a credential rejection short-circuits; other
// deletion failures are logged and the cycle proceeds.
func (r *Reconciler) deleteFlaggedFiles(ctx context.Context, d *Draft) (Result, bool) {
	var pending [][]string
	for _, item := range d.AgendaItems {
		if len(item.FileIDsToDelete) > 0 {
			pending = append(pending, item.FileIDsToDelete)
		}
	}
	if len(pending) == 0 {
		return Result{}, true
	}

	var (
		mu       sync.Mutex
		failures []error
	)

	var g errgroup.Group
	for _, fileIDs := range pending {
		fileIDs := fileIDs
		g.Go(func() error {
			if err := r.transport.DeleteFiles(ctx, fileIDs); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range failures {
		var se *StatusError
		if errors.As(err, &se) && se.AuthRejected() {
			return Result{Error: ErrorKindAuth}, false
		}
	}
	for _, err := range failures {
		r.logger.Warn("File deletion failed", zap.Error(err))
	}

	return Result{}, true
}

// createJobs resolves every pending file through the correlation table. A
// file with no table entry is skipped silently.
func (r *Reconciler) createJobs(d *Draft, table map[string]int64) []UploadJob {
	var jobs []UploadJob
	for _, item := range d.AgendaItems {
		for _, f := range item.Files {
			agendaID, ok := table[f.UUID]
			if !ok {
				r.logger.Debug("Skipping file with unresolved agenda id", zap.String("uuid", f.UUID))
				continue
			}
			jobs = append(jobs, UploadJob{File: f, AgendaID: agendaID})
		}
	}
	return jobs
}

// updateJobs uploads only the attachments flagged to-insert, resolving the
// owning agenda id through the item's persisted id or, failing that, the
// correlation entry of its first attachment.
func (r *Reconciler) updateJobs(d *Draft, table map[string]int64) []UploadJob {
	var jobs []UploadJob
	for _, item := range d.AgendaItems {
		agendaID := item.ID
		if agendaID == 0 && len(item.Files) > 0 {
			agendaID = table[item.Files[0].UUID]
		}
		if agendaID == 0 {
			r.logger.Debug("Skipping agenda item with unresolved id", zap.String("localIndex", item.LocalIndex))
			continue
		}

		toInsert := make(map[string]bool, len(item.FileIDsToInsert))
		for _, uuid := range item.FileIDsToInsert {
			toInsert[uuid] = true
		}

		for _, f := range item.Files {
			if toInsert[f.UUID] {
				jobs = append(jobs, UploadJob{File: f, AgendaID: agendaID})
			}
		}
	}
	return jobs
}

func (r *Reconciler) stage(s Stage) {
	if r.stageFn != nil {
		r.stageFn(s)
	}
}

func classifySubmit(err error) Result {
	var se *StatusError
	if errors.As(err, &se) && se.AuthRejected() {
		return Result{Error: ErrorKindAuth}
	}
	return Result{Error: ErrorKindItinerary}
}

func classifyUpload(err error) Result {
	if errors.Is(err, ErrAuthRequired) {
		return Result{Error: ErrorKindAuth}
	}
	var se *StatusError
	if errors.As(err, &se) && se.ShortCode != "" {
		return Result{Error: ErrorKindFile, ShortCode: se.ShortCode}
	}
	return Result{Error: ErrorKindItinerary}
}
