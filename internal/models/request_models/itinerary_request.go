package request_models

type AgendaItemRequest struct {
	ID              int64    `json:"id,omitempty"`
	Title           string   `json:"title" binding:"required"`
	Desc            *string  `json:"desc,omitempty"`
	Location        *string  `json:"location,omitempty"`
	TimingRaw       []string `json:"durationTimingRaw,omitempty"`
	StartTime       *int64   `json:"startTime,omitempty"`
	EndTime         *int64   `json:"endTime,omitempty"`
	DurationInHours *float64 `json:"durationInHours,omitempty"`
	UnknownTime     bool     `json:"unknownTime"`
	Budget          *float64 `json:"budget,omitempty"`
	Day             int      `json:"day,omitempty"`

	// Attachment uuids owned by this item; binary content never rides along,
	// files arrive through the file endpoint after the item has an id.
	FileUUIDs       []string `json:"agendaToFileMapping"`
	FileIDsToDelete []string `json:"fileIdsToDelete,omitempty"`
	FileIDsToInsert []string `json:"fileIdsToInsert,omitempty"`
}

type ItineraryRequest struct {
	SessionID      string   `json:"sessionId"`
	SessionTitle   string   `json:"sessionTitle" binding:"required"`
	Destination    string   `json:"destination,omitempty"`
	DestinationRaw []string `json:"destinationRaw,omitempty"`
	NumberOfPax    int      `json:"numberOfPax"`
	DateRaw        []string `json:"itineraryDateRaw,omitempty"`
	StartDate      *int64   `json:"startDate,omitempty"`
	EndDate        *int64   `json:"endDate,omitempty"`
	UnknownDate    bool     `json:"unknownDate"`
	DurationInDays int      `json:"durationInDays"`

	AgendaItems []AgendaItemRequest `json:"agendaItems"`

	AgendaIDsToDelete []int64 `json:"agendaIdsToDelete,omitempty"`
	AgendaIDsToUpdate []int64 `json:"agendaIdsToUpdate,omitempty"`
}

type ChallengeRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

type AddCollaboratorRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}
