package request_models

import "time"

type CreateTripRequest struct {
	Name        string    `json:"name" binding:"required"`
	Destination string    `json:"destination"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsPublic    bool      `json:"is_public"`
}

type UpdateTripRequest struct {
	Name        *string    `json:"name"`
	Destination *string    `json:"destination"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsPublic    *bool      `json:"is_public"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}
