package domain

// StageID identifies one step of the upload pipeline.
type StageID string

const (
	StageHash        StageID = "hash"
	StageStore       StageID = "store"
	StageLedgerWrite StageID = "ledger-write"
)

// StageStatus is the per-stage state of one upload attempt.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageProcessing StageStatus = "processing"
	StageCompleted  StageStatus = "completed"
	StageError      StageStatus = "error"
)

// UploadStage is one entry of an attempt's stage list.
type UploadStage struct {
	ID     StageID     `json:"id"`
	Status StageStatus `json:"status"`
	Error  string      `json:"error,omitempty"`
}

// UploadAttempt is the transient state of a single pass through the
// pipeline. It is never persisted; a new file selection starts a fresh
// attempt with all stages pending.
type UploadAttempt struct {
	ID       string  `json:"id"`
	FileName string  `json:"file_name"`
	FileSize int64   `json:"file_size"`
	Receiver *string `json:"receiver,omitempty"`

	Stages []UploadStage `json:"stages"`

	// Filled in as stages complete.
	Hash          string `json:"hash,omitempty"`
	ContentID     string `json:"ipfs_cid,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// NewUploadAttempt returns an attempt with every stage pending, in
// execution order.
func NewUploadAttempt(id, fileName string, fileSize int64) *UploadAttempt {
	return &UploadAttempt{
		ID:       id,
		FileName: fileName,
		FileSize: fileSize,
		Stages: []UploadStage{
			{ID: StageHash, Status: StagePending},
			{ID: StageStore, Status: StagePending},
			{ID: StageLedgerWrite, Status: StagePending},
		},
	}
}

// SetStage updates the status of one stage in place.
func (a *UploadAttempt) SetStage(id StageID, status StageStatus) {
	for i := range a.Stages {
		if a.Stages[i].ID == id {
			a.Stages[i].Status = status
			return
		}
	}
}

// FailStage marks a stage as errored with a message. Earlier completed
// stages are left untouched; later stages never run.
func (a *UploadAttempt) FailStage(id StageID, msg string) {
	for i := range a.Stages {
		if a.Stages[i].ID == id {
			a.Stages[i].Status = StageError
			a.Stages[i].Error = msg
			return
		}
	}
}

// Stage returns the stage entry for an ID.
func (a *UploadAttempt) Stage(id StageID) (UploadStage, bool) {
	for _, s := range a.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return UploadStage{}, false
}

// Completed reports whether every stage finished successfully.
func (a *UploadAttempt) Completed() bool {
	for _, s := range a.Stages {
		if s.Status != StageCompleted {
			return false
		}
	}
	return true
}
