package status

import (
	"crown-status/pkg/probe"
	"crown-status/pkg/sysinfo"
	"crown-status/pkg/systemd"
)

// EndpointStatus is one public endpoint with its probe outcome
// flattened alongside the endpoint identity.
type EndpointStatus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	probe.Result
}

// Host is the local machine snapshot. Pointer fields serialize as null
// when the underlying source was unavailable; they are never omitted.
type Host struct {
	UptimeSeconds *float64            `json:"uptime_seconds"`
	UptimeHuman   *string             `json:"uptime_human"`
	CPUTempC      *float64            `json:"cpu_temp_c"`
	Load1m        *float64            `json:"load_1m"`
	Mem           *sysinfo.UsageStats `json:"mem"`
	Disk          *sysinfo.UsageStats `json:"disk"`
	Net           *sysinfo.NetStats   `json:"net"`
	Health        string              `json:"health"`
}

// Payload is the /api/status response body. It is rebuilt from scratch
// on every request and always complete: failing sources show up as
// nulls or per-endpoint error strings, never as a missing key.
type Payload struct {
	TS              string                       `json:"ts"`
	PublicEndpoints []EndpointStatus             `json:"public_endpoints"`
	Pi              Host                         `json:"pi"`
	Services        map[string]systemd.UnitState `json:"services"`
}
