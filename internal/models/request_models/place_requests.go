package request_models

type ImportListRequest struct {
	URL         string `json:"url" binding:"required"`
	SuggestedBy string `json:"suggested_by"`
}
