package inmemory

import "testing"

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("craft")
	r.RecordSuccess("buy")
	r.RecordSuccess("buy")
	r.RecordConflict()
	r.RecordFailure()

	s := r.Snapshot()
	if s.TransactionTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.TransactionTotal)
	}
	if s.TransactionSuccess != 3 {
		t.Fatalf("expected success 3, got %d", s.TransactionSuccess)
	}
	if s.TransactionConflict != 1 {
		t.Fatalf("expected conflict 1, got %d", s.TransactionConflict)
	}
	if s.TransactionFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.TransactionFailure)
	}
	if s.ByOperation["buy"] != 2 {
		t.Fatalf("expected buy count 2, got %d", s.ByOperation["buy"])
	}
	if s.ByOperation["craft"] != 1 {
		t.Fatalf("expected craft count 1, got %d", s.ByOperation["craft"])
	}
}
