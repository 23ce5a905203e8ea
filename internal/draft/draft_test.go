package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()

	require.Equal(t, "Untitled Travel", d.SessionTitle)
	require.Equal(t, 1, d.DurationInDays)
	require.Equal(t, 1, d.NumberOfPax)
	require.Empty(t, d.AgendaItems)
}

func TestResetClearsEverything(t *testing.T) {
	d := NewDraft()
	d.SessionID = "session-1"
	d.Destination = "Hanoi"
	d.AgendaItems = []*AgendaItem{{Title: "x"}}
	d.AgendaIDsToDelete = []int64{4}

	d.Reset()

	require.Empty(t, d.SessionID)
	require.Empty(t, d.Destination)
	require.Empty(t, d.AgendaItems)
	require.Empty(t, d.AgendaIDsToDelete)
	require.Equal(t, "Untitled Travel", d.SessionTitle)
}

func TestSetDateSelection(t *testing.T) {
	tests := []struct {
		name         string
		dates        []string
		wantDuration int
		wantSet      bool
	}{
		{name: "single day", dates: []string{"2026-03-10", "2026-03-10"}, wantDuration: 1, wantSet: true},
		{name: "weekend", dates: []string{"2026-03-13", "2026-03-15"}, wantDuration: 3, wantSet: true},
		{name: "full week", dates: []string{"2026-03-09", "2026-03-15"}, wantDuration: 7, wantSet: true},
		{name: "too few entries", dates: []string{"2026-03-10"}},
		{name: "too many entries", dates: []string{"2026-03-10", "2026-03-11", "2026-03-12"}},
		{name: "unparseable start", dates: []string{"not-a-date", "2026-03-15"}},
		{name: "unparseable end", dates: []string{"2026-03-10", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft()
			d.SetDateSelection(tt.dates)

			if !tt.wantSet {
				require.Zero(t, d.StartDate)
				require.Zero(t, d.EndDate)
				require.Empty(t, d.DateRaw)
				return
			}

			require.Equal(t, tt.wantDuration, d.DurationInDays)
			require.Equal(t, tt.dates, d.DateRaw)
			require.NotZero(t, d.StartDate)
			require.GreaterOrEqual(t, d.EndDate, d.StartDate)
		})
	}
}

func TestDays(t *testing.T) {
	d := NewDraft()
	require.Equal(t, []int{1}, d.Days())

	d.SetDateSelection([]string{"2026-03-13", "2026-03-15"})
	require.Equal(t, []int{1, 2, 3}, d.Days())

	d.DurationInDays = 0
	require.Empty(t, d.Days())
}

func TestAddAgendaItemStampsLocalIndex(t *testing.T) {
	d := NewDraft()

	first := &AgendaItem{Title: "Beach"}
	second := &AgendaItem{Title: "Dinner"}
	d.AddAgendaItem(first)
	d.AddAgendaItem(second)

	require.Len(t, d.AgendaItems, 2)
	require.NotEmpty(t, first.LocalIndex)
	require.NotEmpty(t, second.LocalIndex)
}

func TestRemoveAgendaItem(t *testing.T) {
	t.Run("persisted item flags deletion", func(t *testing.T) {
		d := NewDraft()
		item := &AgendaItem{ID: 42, LocalIndex: "1"}
		d.AgendaItems = []*AgendaItem{item}
		d.AgendaIDsToUpdate = []int64{42}

		d.RemoveAgendaItem(item)

		require.Empty(t, d.AgendaItems)
		require.Equal(t, []int64{42}, d.AgendaIDsToDelete)
		require.Empty(t, d.AgendaIDsToUpdate)
	})

	t.Run("unpersisted item leaves flags untouched", func(t *testing.T) {
		d := NewDraft()
		item := &AgendaItem{LocalIndex: "1"}
		d.AgendaItems = []*AgendaItem{item}

		d.RemoveAgendaItem(item)

		require.Empty(t, d.AgendaItems)
		require.Empty(t, d.AgendaIDsToDelete)
	})

	t.Run("removing twice does not duplicate the flag", func(t *testing.T) {
		d := NewDraft()
		item := &AgendaItem{ID: 42, LocalIndex: "1"}
		d.AgendaItems = []*AgendaItem{item}

		d.RemoveAgendaItem(item)
		d.AgendaItems = []*AgendaItem{item}
		d.RemoveAgendaItem(item)

		require.Equal(t, []int64{42}, d.AgendaIDsToDelete)
	})

	t.Run("unknown item is a no-op", func(t *testing.T) {
		d := NewDraft()
		d.AgendaItems = []*AgendaItem{{LocalIndex: "1"}}

		d.RemoveAgendaItem(&AgendaItem{LocalIndex: "2"})

		require.Len(t, d.AgendaItems, 1)
	})
}

func TestUpdateAgendaItem(t *testing.T) {
	t.Run("replaces by local index and flags update", func(t *testing.T) {
		d := NewDraft()
		d.AgendaItems = []*AgendaItem{{ID: 42, LocalIndex: "1", Title: "old"}}

		d.UpdateAgendaItem(&AgendaItem{ID: 42, LocalIndex: "1", Title: "new"})

		require.Equal(t, "new", d.AgendaItems[0].Title)
		require.Equal(t, []int64{42}, d.AgendaIDsToUpdate)
	})

	t.Run("pending deletion wins over update", func(t *testing.T) {
		d := NewDraft()
		d.AgendaItems = []*AgendaItem{{ID: 42, LocalIndex: "1"}}
		d.AgendaIDsToDelete = []int64{42}

		d.UpdateAgendaItem(&AgendaItem{ID: 42, LocalIndex: "1", Title: "new"})

		require.Empty(t, d.AgendaIDsToUpdate)
		require.Equal(t, []int64{42}, d.AgendaIDsToDelete)
	})

	t.Run("unpersisted item never flagged", func(t *testing.T) {
		d := NewDraft()
		d.AgendaItems = []*AgendaItem{{LocalIndex: "1"}}

		d.UpdateAgendaItem(&AgendaItem{LocalIndex: "1", Title: "new"})

		require.Empty(t, d.AgendaIDsToUpdate)
		require.Equal(t, "new", d.AgendaItems[0].Title)
	})

	t.Run("repeated updates keep a single flag", func(t *testing.T) {
		d := NewDraft()
		d.AgendaItems = []*AgendaItem{{ID: 42, LocalIndex: "1"}}

		d.UpdateAgendaItem(&AgendaItem{ID: 42, LocalIndex: "1", Title: "a"})
		d.UpdateAgendaItem(&AgendaItem{ID: 42, LocalIndex: "1", Title: "b"})

		require.Equal(t, []int64{42}, d.AgendaIDsToUpdate)
	})
}

func TestNewPendingFile(t *testing.T) {
	f := NewPendingFile("photo.jpg", "image/jpeg", 2048)

	require.NotEmpty(t, f.UUID)
	require.Equal(t, "photo.jpg", f.Name)
	require.Equal(t, "image/jpeg", f.MimeType)
	require.Equal(t, int64(2048), f.SizeInBytes)
	require.Equal(t, FileStatusPending, f.Status)
}
