package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHumanUptime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{90, "1m"},
		{3700, "1h 1m"},
		{90000, "1d 1h 0m"},
		{0, "0m"},
		{59, "0m"},
		{86400, "1d 0h 0m"},
	}
	for _, tc := range cases {
		got := HumanUptime(&tc.seconds)
		if got == nil || *got != tc.want {
			t.Errorf("HumanUptime(%v) = %v, want %q", tc.seconds, got, tc.want)
		}
	}
	if HumanUptime(nil) != nil {
		t.Error("HumanUptime(nil) should be nil")
	}
}

func writeZone(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "temp")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCPUTempCFromZoneFile(t *testing.T) {
	orig := thermalZones
	t.Cleanup(func() { thermalZones = orig })

	thermalZones = []string{writeZone(t, "48650\n")}
	got := CPUTempC()
	if got == nil || *got != 48.65 {
		t.Fatalf("CPUTempC() = %v, want 48.65", got)
	}
}

func TestCPUTempCSkipsBadZones(t *testing.T) {
	orig := thermalZones
	t.Cleanup(func() { thermalZones = orig })

	thermalZones = []string{
		filepath.Join(t.TempDir(), "missing"),
		writeZone(t, "not-a-number"),
		writeZone(t, "-1000"),
		writeZone(t, "51000"),
	}
	got := CPUTempC()
	if got == nil || *got != 51.0 {
		t.Fatalf("CPUTempC() = %v, want 51.0", got)
	}
}

func TestDiskAbsentOnBadPath(t *testing.T) {
	if Disk(filepath.Join(t.TempDir(), "does-not-exist")) != nil {
		t.Error("Disk on a missing path should be nil")
	}
}
