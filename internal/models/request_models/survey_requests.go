package request_models

type SurveyEventRequest struct {
	EventType string                 `json:"event_type" binding:"required"`
	Payload   map[string]interface{} `json:"payload"`
}

type SurveyResponseRequest struct {
	FormID string `json:"form_id" binding:"required"`
}
