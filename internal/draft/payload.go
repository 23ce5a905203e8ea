package draft

import "tripweave/pkg/utils"

const destinationDelimiter = "-"

type AgendaItemPayload struct {
	ID              int64    `json:"id,omitempty"`
	Title           string   `json:"title"`
	Desc            string   `json:"desc,omitempty"`
	Location        string   `json:"location,omitempty"`
	TimingRaw       []string `json:"durationTimingRaw,omitempty"`
	StartTime       int64    `json:"startTime,omitempty"`
	EndTime         int64    `json:"endTime,omitempty"`
	DurationInHours float64  `json:"durationInHours,omitempty"`
	UnknownTime     bool     `json:"unknownTime"`
	Budget          float64  `json:"budget,omitempty"`
	Day             int      `json:"day,omitempty"`

	// FileUUIDs replaces the attachment list on the wire: content never
	// travels with the itinerary submit, only the ownership mapping does.
	FileUUIDs       []string `json:"agendaToFileMapping"`
	FileIDsToDelete []string `json:"fileIdsToDelete,omitempty"`
	FileIDsToInsert []string `json:"fileIdsToInsert,omitempty"`
}

type ItineraryPayload struct {
	SessionID      string   `json:"sessionId"`
	SessionTitle   string   `json:"sessionTitle"`
	Destination    string   `json:"destination,omitempty"`
	DestinationRaw []string `json:"destinationRaw,omitempty"`
	NumberOfPax    int      `json:"numberOfPax"`
	DateRaw        []string `json:"itineraryDateRaw,omitempty"`
	StartDate      int64    `json:"startDate,omitempty"`
	EndDate        int64    `json:"endDate,omitempty"`
	UnknownDate    bool     `json:"unknownDate"`
	DurationInDays int      `json:"durationInDays"`

	AgendaItems []AgendaItemPayload `json:"agendaItems"`

	AgendaIDsToDelete []int64 `json:"agendaIdsToDelete,omitempty"`
	AgendaIDsToUpdate []int64 `json:"agendaIdsToUpdate,omitempty"`
}

// BuildPayload serializes a draft for submission. Raw destination entries,
// when present, replace the canonical destination with their joined form;
// otherwise the pre-existing canonical value rides along unchanged.
func BuildPayload(d *Draft) *ItineraryPayload {
	destination := d.Destination
	if len(d.DestinationRaw) > 0 {
		destination = utils.JoinWithDelimiter(d.DestinationRaw, destinationDelimiter)
	}

	payload := &ItineraryPayload{
		SessionID:         d.SessionID,
		SessionTitle:      d.SessionTitle,
		Destination:       destination,
		DestinationRaw:    d.DestinationRaw,
		NumberOfPax:       d.NumberOfPax,
		DateRaw:           d.DateRaw,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		UnknownDate:       d.UnknownDate,
		DurationInDays:    d.DurationInDays,
		AgendaIDsToDelete: d.AgendaIDsToDelete,
		AgendaIDsToUpdate: d.AgendaIDsToUpdate,
	}

	payload.AgendaItems = make([]AgendaItemPayload, 0, len(d.AgendaItems))
	for _, item := range d.AgendaItems {
		fileUUIDs := make([]string, 0, len(item.Files))
		for _, f := range item.Files {
			fileUUIDs = append(fileUUIDs, f.UUID)
		}

		payload.AgendaItems = append(payload.AgendaItems, AgendaItemPayload{
			ID:              item.ID,
			Title:           item.Title,
			Desc:            item.Desc,
			Location:        item.Location,
			TimingRaw:       item.TimingRaw,
			StartTime:       item.StartTime,
			EndTime:         item.EndTime,
			DurationInHours: item.DurationInHours,
			UnknownTime:     item.UnknownTime,
			Budget:          item.Budget,
			Day:             item.Day,
			FileUUIDs:       fileUUIDs,
			FileIDsToDelete: item.FileIDsToDelete,
			FileIDsToInsert: item.FileIDsToInsert,
		})
	}

	return payload
}
