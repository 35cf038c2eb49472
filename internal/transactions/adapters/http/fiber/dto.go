package fiber

// CreateTransactionRequest represents one transaction lifecycle event
// @Description Transaction event ingestion DTO
type CreateTransactionRequest struct {
	ID          string `json:"id"`
	Dataset     string `json:"dataset"`
	UserID      string `json:"user_id"`
	CreatedAt   int64  `json:"created_at"`
	Status      string `json:"status"`
	PaymentID   string `json:"payment_id"`
	PaymentName string `json:"payment_name"`
	Method      string `json:"method"`
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
}

type CreateTransactionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateTransactionsRequest struct {
	Events []bulkTransactionItem `json:"events"`
}

type bulkTransactionItem struct {
	ID          string `json:"id"`
	Dataset     string `json:"dataset"`
	UserID      string `json:"user_id"`
	CreatedAt   int64  `json:"created_at"`
	Status      string `json:"status"`
	PaymentID   string `json:"payment_id"`
	PaymentName string `json:"payment_name"`
	Method      string `json:"method"`
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
}

type BulkCreateTransactionsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Transaction event payload is invalid"`
}
