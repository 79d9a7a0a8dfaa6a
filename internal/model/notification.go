package model

import "time"

// NotificationType identifies which expiry check produced a notification.
type NotificationType string

const (
	NotificationContractExpiry NotificationType = "contract_expiry"
	NotificationDocumentExpiry NotificationType = "document_expiry"
	NotificationPaymentDue     NotificationType = "payment_due"
)

// Values for Notification.RelatedType.
const (
	RelatedContract = "contract"
	RelatedTenant   = "tenant"
	RelatedPayment  = "payment"
)

// Notification represents an alert surfaced to the user about an
// approaching deadline (contract end, document expiry, payment due).
type Notification struct {
	// ID is the auto-assigned row id.
	ID int64 `db:"id"`

	// Type identifies which expiry check produced this notification.
	Type NotificationType `db:"type"`

	// Title is the short alert heading shown in the notification list.
	Title string `db:"title"`

	// Message is the human-readable notification text.
	Message string `db:"message"`

	// RelatedID links this notification to the originating record, if any.
	RelatedID *int64 `db:"related_id"`

	// RelatedType names the table RelatedID points into.
	RelatedType *string `db:"related_type"`

	// IsRead indicates whether the user has seen this notification.
	IsRead bool `db:"is_read"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `db:"created_at"`
}
