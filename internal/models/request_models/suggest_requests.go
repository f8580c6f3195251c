package request_models

type SuggestItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	DayCount    int      `json:"day_count"`
	Interests   []string `json:"interests"`
}
