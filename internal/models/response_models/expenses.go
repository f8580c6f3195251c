package response_models

type ExpenseResponse struct {
	ID          string `json:"id"`
	PaidBy      string `json:"paid_by"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	SpentAt     *int64 `json:"spent_at,omitempty"`
}

type ExpenseSummaryResponse struct {
	Currency   string           `json:"currency"`
	TotalMinor int64            `json:"total_minor"`
	ByPayer    map[string]int64 `json:"by_payer"`
}
