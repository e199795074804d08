package trade

import (
	"errors"
	"testing"
)

func TestDialog_HappyPath(t *testing.T) {
	d := NewDialog()
	if d.State() != DialogIdle {
		t.Fatalf("expected idle, got %s", d.State())
	}
	if err := d.Open(); err != nil {
		t.Fatalf("open error: %v", err)
	}
	calls := 0
	if err := d.Commit(func() error { calls++; return nil }); err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one transaction attempt, got %d", calls)
	}
	if d.State() != DialogClosed {
		t.Fatalf("expected closed, got %s", d.State())
	}
}

func TestDialog_FailedCommitReturnsToAmountSelection(t *testing.T) {
	d := NewDialog()
	if err := d.Open(); err != nil {
		t.Fatalf("open error: %v", err)
	}
	boom := errors.New("boom")
	if err := d.Commit(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected commit error surfaced, got %v", err)
	}
	if d.State() != DialogAmountSelection {
		t.Fatalf("expected amount selection after failure, got %s", d.State())
	}

	// The retry is a fresh commit, never an implicit double-spend.
	if err := d.Commit(func() error { return nil }); err != nil {
		t.Fatalf("retry commit error: %v", err)
	}
	if d.State() != DialogClosed {
		t.Fatalf("expected closed after retry, got %s", d.State())
	}
}

func TestDialog_InvalidTransitions(t *testing.T) {
	d := NewDialog()
	if err := d.Commit(func() error { return nil }); !errors.Is(err, ErrDialogTransition) {
		t.Fatalf("expected ErrDialogTransition for commit from idle, got %v", err)
	}
	if err := d.Open(); err != nil {
		t.Fatalf("open error: %v", err)
	}
	if err := d.Open(); !errors.Is(err, ErrDialogTransition) {
		t.Fatalf("expected ErrDialogTransition for double open, got %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	if err := d.Close(); !errors.Is(err, ErrDialogTransition) {
		t.Fatalf("expected ErrDialogTransition for double close, got %v", err)
	}
}
