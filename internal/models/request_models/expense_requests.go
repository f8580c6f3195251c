package request_models

type AddExpenseRequest struct {
	PaidBy      string `json:"paid_by" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	AmountMinor int64  `json:"amount_minor" binding:"required"`
	Currency    string `json:"currency"`
	SpentAt     *int64 `json:"spent_at"`
}
