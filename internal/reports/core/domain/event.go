package domain

// Lifecycle statuses with dedicated columns in the per-dimension breakdown.
// Other status values are counted but get no guaranteed column.
const (
	StatusVerifyCode = "is_verify_code"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
	StatusPending    = "pending"
	StatusProcessing = "processing"
)

// TransactionEvent is the read model one report batch is computed from.
// CreatedAt is ms since epoch; it is only compared and subtracted, never
// parsed as calendar time.
type TransactionEvent struct {
	ID          string
	UserID      string
	CreatedAt   int64
	Status      string
	PaymentID   string
	PaymentName string
	Method      string
	CountryID   string
	CountryName string
}

// RequiredFields are the input columns the reports rely on. A field missing
// from a whole batch degrades the statistics that depend on it; it does not
// abort the run.
var RequiredFields = []string{
	"id",
	"user_id",
	"created_at",
	"status",
	"payment_id",
	"country_id",
	"country_name",
	"payment_name",
	"method",
}

// EventBatch is one dataset's worth of events plus batch-level diagnostics.
type EventBatch struct {
	Events []TransactionEvent

	// MissingFields lists required fields absent from every record of the
	// batch (see RequiredFields).
	MissingFields []string
}

// Missing reports whether the named field is absent from the whole batch.
func (b *EventBatch) Missing(field string) bool {
	for _, f := range b.MissingFields {
		if f == field {
			return true
		}
	}
	return false
}
