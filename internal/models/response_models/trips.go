package response_models

type TripResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsPublic    bool   `json:"is_public"`
}

type TripMemberResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type TripDetailResponse struct {
	TripResponse
	Members []TripMemberResponse `json:"members"`
}
