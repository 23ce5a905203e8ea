package response_models

type ProfileInfoResponse struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName"`
	LastLoggedInAt string `json:"lastLoggedInAt"`
}

// RecentSearchResponse is a search-log row joined with its itinerary summary.
type RecentSearchResponse struct {
	ID             int64   `json:"id"`
	ItineraryID    string  `json:"itineraryId"`
	Username       string  `json:"username"`
	CreatedDt      int64   `json:"createdDt"`
	SessionID      string  `json:"sessionId"`
	SessionTitle   string  `json:"sessionTitle"`
	UnknownDate    bool    `json:"unknownDate"`
	StartDate      *int64  `json:"startDate,omitempty"`
	EndDate        *int64  `json:"endDate,omitempty"`
	Destination    *string `json:"destination,omitempty"`
	NumberOfPax    int     `json:"numberOfPax"`
	DurationInDays int     `json:"durationInDays"`
}
