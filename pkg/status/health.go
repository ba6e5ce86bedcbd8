package status

import "crown-status/pkg/sysinfo"

// Classify derives the coarse health verdict from memory, disk and
// temperature. Each available signal votes +1 below its comfortable
// threshold, 0 in the warning band, -1 above it; missing signals
// abstain. The thresholds and score cutoffs are fixed policy.
func Classify(mem, disk *sysinfo.UsageStats, tempC *float64) string {
	score := 0
	if mem != nil {
		score += bandScore(mem.UsedPct, 80, 90)
	}
	if disk != nil {
		score += bandScore(disk.UsedPct, 80, 90)
	}
	if tempC != nil {
		score += bandScore(*tempC, 70, 80)
	}
	switch {
	case score >= 2:
		return "good"
	case score <= -1:
		return "bad"
	default:
		return "warn"
	}
}

func bandScore(v, warn, bad float64) int {
	switch {
	case v < warn:
		return 1
	case v < bad:
		return 0
	default:
		return -1
	}
}
