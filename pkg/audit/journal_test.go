package audit

import (
	"path/filepath"
	"testing"
)

func TestRecordAndRecent(t *testing.T) {
	j := Open(filepath.Join(t.TempDir(), "audit.db"))
	defer j.Close()

	j.Record(EventLoginOK, "ops@drcastiel.com", "oauth")
	j.Record(EventDenied, "intruder@example.com", "not on allow-list")

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Event] = true
	}
	if !seen[EventLoginOK] || !seen[EventDenied] {
		t.Errorf("unexpected events: %+v", entries)
	}
}

func TestNoopJournalNeverPanics(t *testing.T) {
	j := Open("/dev/null/not-a-dir/audit.db")
	j.Record(EventLoginFailed, "x@y.z", "whatever")
	if entries, err := j.Recent(5); err != nil || entries != nil {
		t.Errorf("no-op journal should return nothing, got %v/%v", entries, err)
	}
	j.Close()

	var nilJournal *Journal
	nilJournal.Record(EventLoginOK, "", "")
}
