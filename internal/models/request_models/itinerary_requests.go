package request_models

type AddItineraryItemRequest struct {
	Title     string   `json:"title" binding:"required"`
	Notes     string   `json:"notes"`
	DayNumber *int     `json:"day_number"`
	Position  *int     `json:"position"`
	StartTime string   `json:"start_time"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	PlaceID   *string  `json:"place_id"`
}

type UpdateItineraryItemRequest struct {
	Title     *string  `json:"title"`
	Notes     *string  `json:"notes"`
	DayNumber *int     `json:"day_number"`
	Position  *int     `json:"position"`
	StartTime *string  `json:"start_time"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
