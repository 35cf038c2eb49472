package domain

// Lifecycle statuses the dashboard reasons about. Any other status value is
// stored and counted as-is.
const (
	StatusVerifyCode = "is_verify_code"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
	StatusPending    = "pending"
	StatusProcessing = "processing"
)

// Dataset kinds the ingest API accepts.
const (
	DatasetDeposit  = "deposit"
	DatasetWithdraw = "withdraw"
)

type TransactionEvent struct {
	ID          string
	Dataset     string
	UserID      string
	CreatedAt   int64 // ms since epoch
	Status      string
	PaymentID   string
	PaymentName string
	Method      string
	CountryID   string
	CountryName string
	DedupeKey   string
}
