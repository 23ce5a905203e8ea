package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPayloadJoinsRawDestination(t *testing.T) {
	d := NewDraft()
	d.Destination = "stale"
	d.DestinationRaw = []string{"Hanoi", "Hue", "Da Nang"}

	payload := BuildPayload(d)

	require.Equal(t, "Hanoi-Hue-Da Nang", payload.Destination)
}

func TestBuildPayloadKeepsCanonicalDestination(t *testing.T) {
	d := NewDraft()
	d.Destination = "Hanoi-Hue"

	payload := BuildPayload(d)

	require.Equal(t, "Hanoi-Hue", payload.Destination)
}

func TestBuildPayloadMapsAgendaItems(t *testing.T) {
	d := NewDraft()
	d.SessionID = "session-1"
	d.AgendaIDsToDelete = []int64{3}
	d.AgendaIDsToUpdate = []int64{4}
	d.AgendaItems = []*AgendaItem{
		{
			ID:    4,
			Title: "Museum",
			Files: []*PendingFile{
				{UUID: "file-a"},
				{UUID: "file-b"},
			},
			FileIDsToDelete: []string{"old-1"},
			FileIDsToInsert: []string{"file-b"},
		},
		{
			Title: "Dinner",
		},
	}

	payload := BuildPayload(d)

	require.Equal(t, "session-1", payload.SessionID)
	require.Equal(t, []int64{3}, payload.AgendaIDsToDelete)
	require.Equal(t, []int64{4}, payload.AgendaIDsToUpdate)
	require.Len(t, payload.AgendaItems, 2)

	first := payload.AgendaItems[0]
	require.Equal(t, int64(4), first.ID)
	require.Equal(t, []string{"file-a", "file-b"}, first.FileUUIDs)
	require.Equal(t, []string{"old-1"}, first.FileIDsToDelete)
	require.Equal(t, []string{"file-b"}, first.FileIDsToInsert)

	second := payload.AgendaItems[1]
	require.Zero(t, second.ID)
	require.Empty(t, second.FileUUIDs)
}
