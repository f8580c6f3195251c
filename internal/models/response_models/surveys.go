package response_models

// TriggerDecisionResponse is returned for every survey event. Show is false
// when no active trigger matched or the cooldown suppressed the prompt.
type TriggerDecisionResponse struct {
	Show      bool    `json:"show"`
	FormID    string  `json:"form_id,omitempty"`
	Milestone *string `json:"milestone,omitempty"`
}
