package status

import (
	"testing"

	"crown-status/pkg/sysinfo"
)

func usage(pct float64) *sysinfo.UsageStats {
	return &sysinfo.UsageStats{UsedPct: pct}
}

func fptr(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		mem  *sysinfo.UsageStats
		disk *sysinfo.UsageStats
		temp *float64
		want string
	}{
		{"all healthy", usage(50), usage(50), fptr(40), "good"},
		{"high mem", usage(95), usage(50), fptr(40), "warn"},
		{"everything hot", usage(95), usage(95), fptr(85), "bad"},
		{"warning bands score zero", usage(85), usage(85), fptr(75), "warn"},
		{"all absent", nil, nil, nil, "warn"},
		{"two good one absent", usage(10), usage(10), nil, "good"},
		{"boundary 90 votes down", usage(90), usage(50), fptr(40), "warn"},
		{"boundary 80 temp votes down", usage(50), usage(50), fptr(80), "warn"},
		{"single bad signal", usage(95), nil, nil, "bad"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.mem, tc.disk, tc.temp); got != tc.want {
				t.Fatalf("Classify() = %q, want %q", got, tc.want)
			}
		})
	}
}
