package domain

import "testing"

func TestNewUploadAttempt_StageOrder(t *testing.T) {
	attempt := NewUploadAttempt("a1", "doc.pdf", 42)

	want := []StageID{StageHash, StageStore, StageLedgerWrite}
	if len(attempt.Stages) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(attempt.Stages))
	}
	for i, id := range want {
		if attempt.Stages[i].ID != id {
			t.Fatalf("stage %d = %s, want %s", i, attempt.Stages[i].ID, id)
		}
		if attempt.Stages[i].Status != StagePending {
			t.Fatalf("stage %s starts as %s, want %s", id, attempt.Stages[i].Status, StagePending)
		}
	}
}

func TestUploadAttempt_FailStageLeavesOthersAlone(t *testing.T) {
	attempt := NewUploadAttempt("a1", "doc.pdf", 42)
	attempt.SetStage(StageHash, StageCompleted)
	attempt.FailStage(StageStore, "store unreachable")

	if stage, _ := attempt.Stage(StageHash); stage.Status != StageCompleted {
		t.Fatalf("hash stage = %s, want %s", stage.Status, StageCompleted)
	}
	if stage, _ := attempt.Stage(StageStore); stage.Status != StageError || stage.Error == "" {
		t.Fatalf("store stage = %+v, want error state with message", stage)
	}
	if stage, _ := attempt.Stage(StageLedgerWrite); stage.Status != StagePending {
		t.Fatalf("ledger-write stage = %s, want %s", stage.Status, StagePending)
	}
	if attempt.Completed() {
		t.Fatal("attempt with a failed stage must not report completed")
	}
}
