package payments

// ProcessRequest is an x402 payment settlement for query credits
type ProcessRequest struct {
	Amount     float64 `json:"amount"`
	QueryCount int     `json:"queryCount"`
}

// ProcessResponse confirms the credited purchase
type ProcessResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	QueriesAdded    int    `json:"queriesAdded"`
}
