package response_models

// ModeDuration is one routing result. A nil *ModeDuration in TravelTimes
// means no route was found (or the request failed) for that mode.
type ModeDuration struct {
	DurationSeconds   int    `json:"duration_seconds"`
	Mode              string `json:"mode"`
	FormattedDuration string `json:"formatted_duration"`
}

// TravelTimes maps an origin item ID to per-mode durations toward the next
// item of the same day.
type TravelTimes map[string]map[string]*ModeDuration
