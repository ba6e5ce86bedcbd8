package systemd

import (
	"context"
	"testing"
)

func TestParseShow(t *testing.T) {
	active, sub := parseShow("ActiveState=active\nSubState=running\n")
	if active == nil || *active != "active" {
		t.Errorf("active = %v, want active", active)
	}
	if sub == nil || *sub != "running" {
		t.Errorf("sub = %v, want running", sub)
	}
}

func TestParseShowEmptyValues(t *testing.T) {
	active, sub := parseShow("ActiveState=\nSubState=\n")
	if active != nil || sub != nil {
		t.Errorf("empty values should be nil, got %v/%v", active, sub)
	}
}

func TestParseShowIgnoresNoise(t *testing.T) {
	out := "Warning: something on stderr\nActiveState=inactive\nUnrelated=x\nSubState=dead\n"
	active, sub := parseShow(out)
	if active == nil || *active != "inactive" {
		t.Errorf("active = %v, want inactive", active)
	}
	if sub == nil || *sub != "dead" {
		t.Errorf("sub = %v, want dead", sub)
	}
}

func TestParseShowMissingProperties(t *testing.T) {
	active, sub := parseShow("")
	if active != nil || sub != nil {
		t.Error("no output should yield nil states")
	}
}

// Show must never propagate a failure, whatever systemctl does on the
// host running the tests.
func TestShowNeverFails(t *testing.T) {
	st := Show(context.Background(), "definitely-not-a-real-unit-xyz.service")
	if st.Unit != "definitely-not-a-real-unit-xyz.service" {
		t.Errorf("unit = %q", st.Unit)
	}
}
