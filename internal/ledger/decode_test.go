package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

const (
	testCreator  = "GCREATOR" + "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	testReceiver = "GRECEIVER" + "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
)

func wellFormedRecord(cid string) Value {
	return Map(
		Entry(domain.FieldContentID, Bytes([]byte(cid))),
		Entry(domain.FieldHash, Bytes([]byte{0xab, 0xcd, 0xef})),
		Entry(domain.FieldCreator, Address(testCreator)),
		Entry(domain.FieldTimestamp, U64(1700000000)),
		Entry(domain.FieldSigners, Vec(Address(testReceiver))),
		Entry(domain.FieldSignatures, Vec()),
		Entry(domain.FieldReceiver, Address(testReceiver)),
	)
}

func TestDecodeRecords_WellFormed(t *testing.T) {
	records := DecodeRecords(Vec(wellFormedRecord("QmTestCid123")), testLogger{})

	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "QmTestCid123", record.ID)
	assert.Equal(t, "QmTestCid123", record.ContentID)
	assert.Equal(t, "abcdef", record.Hash)
	assert.Equal(t, testCreator, record.Creator)
	require.NotNil(t, record.Receiver)
	assert.Equal(t, testReceiver, *record.Receiver)

	// Ledger seconds scale to milliseconds.
	assert.Equal(t, int64(1700000000)*1000, record.Timestamp)

	assert.Equal(t, []string{testReceiver}, record.Signers)
	assert.Empty(t, record.Signatures)
	assert.Equal(t, domain.StatusUnsigned, record.Status)
	assert.Equal(t, "Document_QmTestCi", record.FileName)
	assert.Zero(t, record.FileSize)
}

func TestDecodeRecords_TopLevelNotASequence(t *testing.T) {
	records := DecodeRecords(Map(), testLogger{})
	require.NotNil(t, records)
	assert.Empty(t, records)

	records = DecodeRecords(U64(7), testLogger{})
	assert.Empty(t, records)
}

func TestDecodeRecords_MissingFieldYieldsPlaceholder(t *testing.T) {
	// One element is missing its hash; the others must survive untouched.
	malformed := Map(
		Entry(domain.FieldContentID, Bytes([]byte("QmBadRecord"))),
		Entry(domain.FieldCreator, Address(testCreator)),
		Entry(domain.FieldTimestamp, U64(1700000000)),
		Entry(domain.FieldSigners, Vec()),
		Entry(domain.FieldSignatures, Vec()),
	)

	records := DecodeRecords(Vec(
		wellFormedRecord("QmFirst"),
		malformed,
		wellFormedRecord("QmThird"),
	), testLogger{})

	require.Len(t, records, 3)
	assert.Equal(t, "QmFirst", records[0].ID)
	assert.Equal(t, domain.PlaceholderRecord(), records[1])
	assert.Equal(t, domain.StatusUnsigned, records[1].Status)
	assert.Equal(t, "QmThird", records[2].ID)
}

func TestDecodeRecords_NonMapElementYieldsPlaceholder(t *testing.T) {
	records := DecodeRecords(Vec(String("not a record")), testLogger{})
	require.Len(t, records, 1)
	assert.Equal(t, domain.PlaceholderRecord(), records[0])
}

func TestDecodeRecords_VoidReceiverIsAbsent(t *testing.T) {
	record := Map(
		Entry(domain.FieldContentID, Bytes([]byte("QmSelfOnly"))),
		Entry(domain.FieldHash, Bytes([]byte{0x01})),
		Entry(domain.FieldCreator, Address(testCreator)),
		Entry(domain.FieldTimestamp, U64(42)),
		Entry(domain.FieldSigners, Vec()),
		Entry(domain.FieldSignatures, Vec()),
		Entry(domain.FieldReceiver, Void()),
	)

	records := DecodeRecords(Vec(record), testLogger{})
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Receiver)
}

func TestDecodeRecords_TerminalStatusSurvives(t *testing.T) {
	// A contract-reported terminal status wins over what the signer sets
	// would derive.
	record := Map(
		Entry(domain.FieldContentID, Bytes([]byte("QmVerified"))),
		Entry(domain.FieldHash, Bytes([]byte{0x01})),
		Entry(domain.FieldCreator, Address(testCreator)),
		Entry(domain.FieldTimestamp, U64(42)),
		Entry(domain.FieldSigners, Vec(Address(testReceiver))),
		Entry(domain.FieldSignatures, Vec()),
		Entry(domain.FieldStatus, Symbol("verified")),
	)

	records := DecodeRecords(Vec(record), testLogger{})
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusVerified, records[0].Status)
}

func TestDecodeRecords_NonTerminalStatusIsRederived(t *testing.T) {
	// A stale non-terminal status is ignored: all declared signers signed,
	// so the record is signed no matter what the field says.
	record := Map(
		Entry(domain.FieldContentID, Bytes([]byte("QmStale"))),
		Entry(domain.FieldHash, Bytes([]byte{0x01})),
		Entry(domain.FieldCreator, Address(testCreator)),
		Entry(domain.FieldTimestamp, U64(42)),
		Entry(domain.FieldSigners, Vec(Address(testReceiver))),
		Entry(domain.FieldSignatures, Vec(Address(testReceiver))),
		Entry(domain.FieldStatus, Symbol("pending")),
	)

	records := DecodeRecords(Vec(record), testLogger{})
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusSigned, records[0].Status)
}

func TestDecodeRecords_SignedStatus(t *testing.T) {
	record := Map(
		Entry(domain.FieldContentID, Bytes([]byte("QmSigned"))),
		Entry(domain.FieldHash, Bytes([]byte{0x01})),
		Entry(domain.FieldCreator, Address(testCreator)),
		Entry(domain.FieldTimestamp, U64(42)),
		Entry(domain.FieldSigners, Vec(Address(testReceiver))),
		Entry(domain.FieldSignatures, Vec(Address(testReceiver))),
	)

	records := DecodeRecords(Vec(record), testLogger{})
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusSigned, records[0].Status)
}
