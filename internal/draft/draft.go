// Package draft holds the client-side itinerary draft model and the
// reconciliation flow that persists a draft through the itinerary and file
// endpoints. The draft is plain state owned by the caller; nothing in this
// package reaches for globals or singletons.
package draft

import (
	"strconv"
	"time"

	"tripweave/pkg/utils"
)

type FileStatus string

const (
	FileStatusPending   FileStatus = "pending"
	FileStatusUploading FileStatus = "uploading"
	FileStatusUploaded  FileStatus = "uploaded"
	FileStatusError     FileStatus = "error"
)

// PendingFile is an attachment selected by the user but not yet confirmed
// uploaded. The UUID is client-generated and stays stable for the lifetime of
// the upload; failed uploads are never retried automatically.
type PendingFile struct {
	UUID        string
	Name        string
	MimeType    string
	SizeInBytes int64
	Blob        *string
	Status      FileStatus
	Progress    int
	Error       string

	// AgendaID is the server-assigned owner, known only after a create or
	// update cycle resolved it through the correlation table.
	AgendaID int64
}

func NewPendingFile(name, mimeType string, sizeInBytes int64) *PendingFile {
	return &PendingFile{
		UUID:        utils.NewFileUUID(),
		Name:        name,
		MimeType:    mimeType,
		SizeInBytes: sizeInBytes,
		Status:      FileStatusPending,
	}
}

type AgendaItem struct {
	// ID is the persisted identifier; zero until the server assigned one.
	ID int64

	// LocalIndex matches items across edits before a server id exists. It is
	// client-only and never transmitted as an identifier.
	LocalIndex string

	Title           string
	Desc            string
	Location        string
	TimingRaw       []string
	StartTime       int64
	EndTime         int64
	DurationInHours float64
	UnknownTime     bool
	Budget          float64
	Day             int

	Files           []*PendingFile
	FileIDsToDelete []string
	FileIDsToInsert []string
}

// Draft is a client-held, not-yet-fully-persisted itinerary. The draft owns
// its agenda items and, transitively, their pending files; nothing is shared
// across drafts.
type Draft struct {
	ID           string
	SessionID    string
	ShortCode    string
	SessionTitle string

	DestinationRaw []string
	Destination    string
	NumberOfPax    int

	DateRaw        []string
	StartDate      int64
	EndDate        int64
	UnknownDate    bool
	DurationInDays int

	AgendaItems []*AgendaItem

	// Server-known agenda ids flagged since the last sync. An id lives in at
	// most one of the two lists.
	AgendaIDsToDelete []int64
	AgendaIDsToUpdate []int64
}

func NewDraft() *Draft {
	return &Draft{
		SessionTitle:   "Untitled Travel",
		DurationInDays: 1,
		NumberOfPax:    1,
	}
}

func (d *Draft) Reset() {
	*d = *NewDraft()
}

// SetDateSelection derives start/end timestamps and the trip duration from a
// two-element date range. Other lengths are ignored.
func (d *Draft) SetDateSelection(dates []string) {
	if len(dates) != 2 {
		return
	}

	start, err := time.Parse("2006-01-02", dates[0])
	if err != nil {
		return
	}
	end, err := time.Parse("2006-01-02", dates[1])
	if err != nil {
		return
	}

	d.DateRaw = dates
	d.StartDate = start.UnixMilli()
	d.EndDate = end.UnixMilli()
	d.DurationInDays = utils.DurationInDays(start, end, true)
}

// Days lists the day numbers of the trip, for rendering per-day agenda tabs.
func (d *Draft) Days() []int {
	return utils.MakeRange(1, d.DurationInDays)
}

// AddAgendaItem appends the item and stamps its local index.
func (d *Draft) AddAgendaItem(item *AgendaItem) {
	item.LocalIndex = strconv.FormatInt(time.Now().UnixNano(), 10)
	d.AgendaItems = append(d.AgendaItems, item)
}

// RemoveAgendaItem drops the item and, when it was already persisted, flags
// its id for deletion on the next sync.
func (d *Draft) RemoveAgendaItem(item *AgendaItem) {
	for i, existing := range d.AgendaItems {
		if !sameItem(existing, item) {
			continue
		}
		if existing.ID != 0 {
			d.AgendaIDsToDelete = utils.AppendUnique(d.AgendaIDsToDelete, existing.ID)
			d.AgendaIDsToUpdate = utils.Remove(d.AgendaIDsToUpdate, existing.ID)
		}
		d.AgendaItems = append(d.AgendaItems[:i], d.AgendaItems[i+1:]...)
		return
	}
}

// UpdateAgendaItem replaces the item carrying the same local index and, when
// persisted, flags its id for update unless it is already pending deletion.
func (d *Draft) UpdateAgendaItem(updated *AgendaItem) {
	if updated.ID != 0 {
		pendingDelete := false
		for _, id := range d.AgendaIDsToDelete {
			if id == updated.ID {
				pendingDelete = true
				break
			}
		}
		if !pendingDelete {
			d.AgendaIDsToUpdate = utils.AppendUnique(d.AgendaIDsToUpdate, updated.ID)
		}
	}

	for i, existing := range d.AgendaItems {
		if existing.LocalIndex == updated.LocalIndex {
			d.AgendaItems[i] = updated
			return
		}
	}
}

func sameItem(a, b *AgendaItem) bool {
	if a.ID != 0 && b.ID != 0 {
		return a.ID == b.ID
	}
	return a.LocalIndex != "" && a.LocalIndex == b.LocalIndex
}
