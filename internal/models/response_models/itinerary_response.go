package response_models

// AgendaFileMapEntry tells the client which attachment uuids each persisted
// agenda item owns, so uploads can be correlated to server-assigned ids.
type AgendaFileMapEntry struct {
	AgendaID  int64    `json:"agendaId"`
	FileUUIDs []string `json:"fileUuids"`
}

type SubmitItineraryResponse struct {
	ShortCode       string               `json:"shortCode"`
	AgendaToFileMap []AgendaFileMapEntry `json:"agendaToFileMap"`
}

type AttachmentResponse struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	SizeInBytes int64  `json:"sizeInBytes"`
}

type AgendaItemResponse struct {
	ID              int64                `json:"id"`
	Title           string               `json:"title"`
	Desc            *string              `json:"desc,omitempty"`
	Location        *string              `json:"location,omitempty"`
	TimingRaw       []string             `json:"durationTimingRaw,omitempty"`
	StartTime       *int64               `json:"startTime,omitempty"`
	EndTime         *int64               `json:"endTime,omitempty"`
	DurationInHours *float64             `json:"durationInHours,omitempty"`
	UnknownTime     bool                 `json:"unknownTime"`
	Budget          *float64             `json:"budget,omitempty"`
	Day             int                  `json:"day"`
	Files           []AttachmentResponse `json:"files"`
}

type ItineraryDetailResponse struct {
	ID             string               `json:"id"`
	SessionID      string               `json:"sessionId"`
	ShortCode      string               `json:"shortCode"`
	SessionTitle   string               `json:"sessionTitle"`
	Destination    *string              `json:"destination,omitempty"`
	DestinationRaw []string             `json:"destinationRaw,omitempty"`
	NumberOfPax    int                  `json:"numberOfPax"`
	DateRaw        []string             `json:"itineraryDateRaw,omitempty"`
	StartDate      *int64               `json:"startDate,omitempty"`
	EndDate        *int64               `json:"endDate,omitempty"`
	UnknownDate    bool                 `json:"unknownDate"`
	DurationInDays int                  `json:"durationInDays"`
	AgendaItems    []AgendaItemResponse `json:"agendaItems"`
}

type PermissionResponse struct {
	HasPermission bool `json:"hasPermission"`
}
