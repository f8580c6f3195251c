package response_models

type SuggestedActivity struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SuggestedDay struct {
	Day        int                 `json:"day"`
	Activities []SuggestedActivity `json:"activities"`
}

type SuggestedItinerary struct {
	Destination string         `json:"destination"`
	Days        []SuggestedDay `json:"days"`
}
