package ledger

import (
	"encoding/hex"
	"fmt"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

// DecodeRecords turns the return value of an owner/receiver query into
// document records. The top-level value must be a sequence; anything else
// is reported and yields an empty result. A malformed element is replaced
// by a placeholder record so one bad record never loses the rest of the
// query.
func DecodeRecords(v Value, logger domain.Logger) []domain.DocumentRecord {
	items, ok := v.AsVec()
	if !ok {
		logger.Warn("unexpected ledger result shape", "expected", KindVec, "got", v.Kind())
		return []domain.DocumentRecord{}
	}

	records := make([]domain.DocumentRecord, 0, len(items))
	for i, item := range items {
		record, err := decodeRecord(item)
		if err != nil {
			logger.Warn("malformed document record, substituting placeholder", "index", i, "reason", err)
			records = append(records, domain.PlaceholderRecord())
			continue
		}
		records = append(records, record)
	}
	return records
}

func decodeRecord(v Value) (domain.DocumentRecord, error) {
	entries, ok := v.AsMap()
	if !ok {
		return domain.DocumentRecord{}, fmt.Errorf("record is %s, want %s", v.Kind(), KindMap)
	}

	required := []string{
		domain.FieldContentID,
		domain.FieldHash,
		domain.FieldCreator,
		domain.FieldTimestamp,
		domain.FieldSigners,
		domain.FieldSignatures,
	}
	for _, name := range required {
		if _, ok := findField(entries, name); !ok {
			return domain.DocumentRecord{}, fmt.Errorf("missing required field %q", name)
		}
	}

	cidField, _ := findField(entries, domain.FieldContentID)
	cidBytes, ok := cidField.AsBytes()
	if !ok {
		return domain.DocumentRecord{}, fmt.Errorf("field %q is not bytes", domain.FieldContentID)
	}
	contentID := string(cidBytes)

	hashField, _ := findField(entries, domain.FieldHash)
	hashBytes, ok := hashField.AsBytes()
	if !ok {
		return domain.DocumentRecord{}, fmt.Errorf("field %q is not bytes", domain.FieldHash)
	}

	creatorField, _ := findField(entries, domain.FieldCreator)
	creator, ok := creatorField.AsAddress()
	if !ok {
		return domain.DocumentRecord{}, fmt.Errorf("field %q is not an address", domain.FieldCreator)
	}

	tsField, _ := findField(entries, domain.FieldTimestamp)
	seconds, ok := tsField.AsU64()
	if !ok {
		return domain.DocumentRecord{}, fmt.Errorf("field %q is not a u64", domain.FieldTimestamp)
	}

	signersField, _ := findField(entries, domain.FieldSigners)
	signers, err := decodeAddressList(signersField)
	if err != nil {
		return domain.DocumentRecord{}, fmt.Errorf("field %q: %w", domain.FieldSigners, err)
	}

	signaturesField, _ := findField(entries, domain.FieldSignatures)
	signatures, err := decodeAddressList(signaturesField)
	if err != nil {
		return domain.DocumentRecord{}, fmt.Errorf("field %q: %w", domain.FieldSignatures, err)
	}

	// Receiver is optional: an absent field and the void representation both
	// mean no designated counterpart.
	var receiver *string
	if recvField, ok := findField(entries, domain.FieldReceiver); ok && !recvField.IsVoid() {
		addr, ok := recvField.AsAddress()
		if !ok {
			return domain.DocumentRecord{}, fmt.Errorf("field %q is not an address or void", domain.FieldReceiver)
		}
		receiver = &addr
	}

	// Status is optional too. Verified and rejected are terminal states set
	// outside this client and survive re-derivation; anything else is
	// re-derived from the signer sets.
	reported := domain.StatusUnsigned
	if statusField, ok := findField(entries, domain.FieldStatus); ok {
		if sym, ok := statusField.AsSymbol(); ok {
			reported = domain.Status(sym)
		} else if str, ok := statusField.AsString(); ok {
			reported = domain.Status(str)
		}
	}

	return domain.DocumentRecord{
		ID:         contentID,
		Hash:       hex.EncodeToString(hashBytes),
		ContentID:  contentID,
		Creator:    creator,
		Receiver:   receiver,
		Timestamp:  int64(seconds) * 1000,
		Signers:    signers,
		Signatures: signatures,
		Status:     domain.ReconcileStatus(reported, signers, signatures),
		FileName:   displayName(contentID),
		FileSize:   0,
	}, nil
}

func findField(entries []MapEntry, name string) (Value, bool) {
	for _, entry := range entries {
		if sym, ok := entry.Key.AsSymbol(); ok && sym == name {
			return entry.Val, true
		}
	}
	return Value{}, false
}

func decodeAddressList(v Value) ([]string, error) {
	items, ok := v.AsVec()
	if !ok {
		return nil, fmt.Errorf("is %s, want %s", v.Kind(), KindVec)
	}
	addresses := make([]string, 0, len(items))
	for _, item := range items {
		addr, ok := item.AsAddress()
		if !ok {
			return nil, fmt.Errorf("element is %s, want %s", item.Kind(), KindAddress)
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// displayName is the presentation fallback for records whose original file
// name is not recoverable from the ledger.
func displayName(contentID string) string {
	if contentID == "" {
		return ""
	}
	short := contentID
	if len(short) > 8 {
		short = short[:8]
	}
	return "Document_" + short
}
