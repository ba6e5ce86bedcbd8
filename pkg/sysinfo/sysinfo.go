// Package sysinfo reads local machine health signals. Every reader is
// best-effort: a metric that cannot be read on this platform comes back
// nil and never affects the other readers.
package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

// UsageStats describes a capacity-style metric (memory or disk).
type UsageStats struct {
	TotalBytes uint64  `json:"total_bytes"`
	UsedBytes  uint64  `json:"used_bytes"`
	UsedPct    float64 `json:"used_pct"`
}

// NetStats holds cumulative interface counters since boot.
type NetStats struct {
	TxBytes uint64 `json:"tx_bytes"`
	RxBytes uint64 `json:"rx_bytes"`
}

// thermalZones are tried in order before falling back to the generic
// sensor API. The Pi exposes its SoC temperature in zone0.
var thermalZones = []string{
	"/sys/class/thermal/thermal_zone0/temp",
	"/sys/class/thermal/thermal_zone1/temp",
}

// UptimeSeconds returns seconds since boot, or nil if the boot time is
// unavailable.
func UptimeSeconds() *float64 {
	bt, err := host.BootTime()
	if err != nil || bt == 0 {
		return nil
	}
	s := time.Since(time.Unix(int64(bt), 0)).Seconds()
	if s < 0 {
		return nil
	}
	return &s
}

// HumanUptime renders seconds as "{d}d {h}h {m}m", dropping leading
// units that are zero ("1h 1m", "5m").
func HumanUptime(seconds *float64) *string {
	if seconds == nil {
		return nil
	}
	s := int64(*seconds)
	days := s / 86400
	rem := s % 86400
	hrs := rem / 3600
	mins := (rem % 3600) / 60
	var out string
	switch {
	case days > 0:
		out = fmt.Sprintf("%dd %dh %dm", days, hrs, mins)
	case hrs > 0:
		out = fmt.Sprintf("%dh %dm", hrs, mins)
	default:
		out = fmt.Sprintf("%dm", mins)
	}
	return &out
}

// CPUTempC reads the CPU temperature in Celsius. Thermal zone files are
// tried first (millidegree integers); the sensor API is the fallback.
func CPUTempC() *float64 {
	for _, p := range thermalZones {
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil || v < 0 {
			continue
		}
		c := float64(v) / 1000.0
		return &c
	}
	if temps, err := sensors.SensorsTemperatures(); err == nil && len(temps) > 0 {
		c := temps[0].Temperature
		return &c
	}
	return nil
}

// Load1 returns the 1-minute load average, nil where unsupported.
func Load1() *float64 {
	avg, err := load.Avg()
	if err != nil || avg == nil {
		return nil
	}
	v := avg.Load1
	return &v
}

// Mem returns virtual memory usage, nil on failure. The struct is all
// or nothing: no partial memory object is ever produced.
func Mem() *UsageStats {
	vm, err := mem.VirtualMemory()
	if err != nil || vm == nil {
		return nil
	}
	return &UsageStats{TotalBytes: vm.Total, UsedBytes: vm.Used, UsedPct: vm.UsedPercent}
}

// Disk returns usage for the given mount path, nil on failure.
func Disk(path string) *UsageStats {
	du, err := disk.Usage(path)
	if err != nil || du == nil {
		return nil
	}
	pct := du.UsedPercent
	if pct == 0 && du.Total > 0 {
		pct = float64(du.Used) / float64(du.Total) * 100.0
	}
	return &UsageStats{TotalBytes: du.Total, UsedBytes: du.Used, UsedPct: pct}
}

// Net returns cumulative tx/rx byte counters across all interfaces.
func Net() *NetStats {
	counters, err := psnet.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return nil
	}
	return &NetStats{TxBytes: counters[0].BytesSent, RxBytes: counters[0].BytesRecv}
}
