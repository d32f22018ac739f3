package entity

const (
	NarrativeSkipped = "delivery skipped, transport not configured"
	NarrativeSent    = "sent successfully"
	NarrativeFailed  = "delivery failed, OTP still valid"
)

// Outcome labels a delivery attempt in metrics.
type Outcome string

const (
	OutcomeSkipped Outcome = "skipped"
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
)

// DeliveryResult is the outcome of an OTP delivery. Empty strings mean absent.
//
// Succeeded is true when the message was accepted and also when delivery was
// skipped because no credentials are configured.
type DeliveryResult struct {
	Succeeded    bool
	DiagnosticID string
	ErrorDetail  string
	Narrative    string
}

// AuditRecord is what the operational log records about one delivery.
type AuditRecord struct {
	Destination string
	Subject     string
	Code        string
	MessageID   string
	Err         error
	IdentitySet bool
	SecretSet   bool
}
