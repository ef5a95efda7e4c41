package domain

// Status is the lifecycle state of a document record.
type Status string

const (
	StatusUnsigned Status = "unsigned"
	StatusPending  Status = "pending"
	StatusSigned   Status = "signed"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// DeriveStatus maps a record's signer and signature sets to its lifecycle
// status. It is total and never mutates its arguments.
func DeriveStatus(signers, signatures []string) Status {
	switch {
	case len(signers) > 0 && len(signatures) == len(signers):
		return StatusSigned
	case len(signatures) > 0:
		return StatusPending
	default:
		return StatusUnsigned
	}
}

// ReconcileStatus applies DeriveStatus unless the current status is a
// terminal state set outside this client. Verified and rejected only ever
// come from the ledger or an explicit override and must survive re-derivation.
func ReconcileStatus(current Status, signers, signatures []string) Status {
	if current == StatusVerified || current == StatusRejected {
		return current
	}
	return DeriveStatus(signers, signatures)
}
