package domain

// Wire field names used by the ledger contract when returning document
// records. Decoding depends on these exactly.
const (
	FieldContentID  = "ipfs_cid"
	FieldHash       = "hash"
	FieldCreator    = "creator"
	FieldTimestamp  = "timestamp"
	FieldSigners    = "signers"
	FieldSignatures = "signatures"
	FieldReceiver   = "receiver"
	FieldStatus     = "status"
)

// DocumentRecord is the canonical notarized-document entity. It is created
// exactly once by a successful ledger write and read back via owner or
// receiver queries; the Status field is always derived, never stored.
type DocumentRecord struct {
	ID        string  `json:"id"`
	Hash      string  `json:"hash"`
	ContentID string  `json:"ipfs_cid"`
	Creator   string  `json:"creator"`
	Receiver  *string `json:"receiver,omitempty"`

	// Timestamp is milliseconds since epoch. The ledger stores seconds;
	// decoding scales it.
	Timestamp int64 `json:"timestamp"`

	Signers    []string `json:"signers"`
	Signatures []string `json:"signatures"`
	Status     Status   `json:"status"`

	// Presentation metadata. Not recoverable from the ledger, so these may
	// be placeholders.
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
}

// PlaceholderRecord returns the well-defined empty record substituted for a
// malformed ledger element so one bad record cannot lose the rest of a
// query result.
func PlaceholderRecord() DocumentRecord {
	return DocumentRecord{
		Signers:    []string{},
		Signatures: []string{},
		Status:     StatusUnsigned,
	}
}

// PinResult is the outcome of pinning bytes to the content store.
type PinResult struct {
	ContentID string `json:"ipfs_cid"`
	Size      int64  `json:"size"`
}

// FetchResult is the outcome of retrieving bytes from the content store.
// Unavailability is an explicit branch rather than an error: the hash and
// the ledger stay authoritative whether or not the bytes are previewable.
type FetchResult struct {
	Available   bool
	Data        []byte
	ContentType string
}
