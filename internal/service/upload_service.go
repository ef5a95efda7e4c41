package service

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	"github.com/fnurozcetin/lexStamp/internal/ledger"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

var pdfMagic = []byte("%PDF-")

// UploadService drives the three-stage notarization pipeline: hash the
// file, pin it to the content store, record it on the ledger. Stages run
// strictly in order; the first error halts the attempt and later stages
// stay pending. There is no auto-retry: the user restarts with a new file
// selection, which starts a fresh attempt.
type UploadService struct {
	ledger domain.LedgerClient
	store  domain.ContentStore
	logger domain.Logger

	// Single-slot guard: only one attempt per service may be in flight.
	inFlight atomic.Bool
}

// NewUploadService creates the pipeline orchestrator.
func NewUploadService(ledgerClient domain.LedgerClient, contentStore domain.ContentStore, logger domain.Logger) *UploadService {
	return &UploadService{
		ledger: ledgerClient,
		store:  contentStore,
		logger: logger,
	}
}

// Process runs one upload attempt. Validation failures (no session, wrong
// file type, malformed receiver) are rejected before the pipeline starts:
// the returned attempt still has every stage pending. Only the magic
// prefix is read during validation; the rest of the file streams through
// the hash stage, so a truncated read fails that stage. Once a stage
// errors the attempt is returned alongside the stage's error.
func (s *UploadService) Process(ctx context.Context, session *domain.Session, fileName, contentType string, file io.Reader, receiver string) (*domain.UploadAttempt, error) {
	if session == nil || !session.IsConnected || session.Address == "" {
		return nil, apperrors.NewAuthenticationError(domain.ErrSessionNotConnected.Error())
	}

	attempt := domain.NewUploadAttempt(uuid.New().String(), fileName, 0)

	if contentType != "" && contentType != "application/pdf" {
		return attempt, apperrors.NewValidationError("only PDF files can be notarized", "content type "+contentType)
	}
	prefix := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(file, prefix); err != nil || !bytes.Equal(prefix, pdfMagic) {
		return attempt, apperrors.NewValidationError("only PDF files can be notarized", "file is not a PDF")
	}

	var receiverAddr *string
	if receiver != "" {
		if err := ledger.ValidateAccountAddress(receiver); err != nil {
			return attempt, err
		}
		receiverAddr = &receiver
	}
	attempt.Receiver = receiverAddr

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, apperrors.NewConflictError(domain.ErrUploadInFlight.Error())
	}
	defer s.inFlight.Store(false)

	// Stage 1: digest. The file is buffered while it streams through the
	// hasher; a mid-read failure fails this stage and leaves the rest
	// pending.
	attempt.SetStage(domain.StageHash, domain.StageProcessing)
	var buf bytes.Buffer
	buf.Write(prefix)
	hash, err := HashDocument(io.MultiReader(bytes.NewReader(prefix), io.TeeReader(file, &buf)))
	if err != nil {
		attempt.FailStage(domain.StageHash, err.Error())
		s.logger.Error("upload halted at hash stage", err, "attempt_id", attempt.ID)
		return attempt, err
	}
	attempt.Hash = hash
	attempt.FileSize = int64(buf.Len())
	attempt.SetStage(domain.StageHash, domain.StageCompleted)

	// Stage 2: pin to the content store.
	attempt.SetStage(domain.StageStore, domain.StageProcessing)
	pin, err := s.store.Pin(ctx, fileName, bytes.NewReader(buf.Bytes()))
	if err != nil {
		attempt.FailStage(domain.StageStore, err.Error())
		s.logger.Error("upload halted at store stage", err, "attempt_id", attempt.ID)
		return attempt, err
	}
	attempt.ContentID = pin.ContentID
	attempt.SetStage(domain.StageStore, domain.StageCompleted)

	// Stage 3: ledger write.
	attempt.SetStage(domain.StageLedgerWrite, domain.StageProcessing)
	txID, err := s.ledger.SubmitDocument(ctx, pin.ContentID, hash, session.Address, receiverAddr)
	if err != nil {
		attempt.FailStage(domain.StageLedgerWrite, err.Error())
		s.logger.Error("upload halted at ledger-write stage", err, "attempt_id", attempt.ID)
		return attempt, err
	}
	attempt.TransactionID = txID
	attempt.SetStage(domain.StageLedgerWrite, domain.StageCompleted)

	s.logger.Info("upload pipeline completed",
		"attempt_id", attempt.ID, "ipfs_cid", pin.ContentID, "tx_id", txID, "file", fileName)
	return attempt, nil
}
