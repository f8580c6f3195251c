package response_models

type ItineraryItemResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Notes     string   `json:"notes,omitempty"`
	DayNumber *int     `json:"day_number"`
	Position  *int     `json:"position"`
	StartTime string   `json:"start_time,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	PlaceID   *string  `json:"place_id,omitempty"`
}
