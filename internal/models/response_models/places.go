package response_models

type PlaceResponse struct {
	ID          string   `json:"id,omitempty"` // empty when the row could not be stored
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Rating      *float64 `json:"rating,omitempty"`
	RatingCount *int     `json:"rating_count,omitempty"`
	Source      string   `json:"source,omitempty"`
	SourceID    string   `json:"source_id,omitempty"`
}

type ImportListResponse struct {
	Title  string          `json:"title"`
	Places []PlaceResponse `json:"places"`
}
