// Package status assembles the full dashboard snapshot from the local
// metric readers, the systemd prober and the endpoint prober.
package status

import (
	"context"
	"time"

	"crown-status/pkg/config"
	"crown-status/pkg/probe"
	"crown-status/pkg/sysinfo"
	"crown-status/pkg/systemd"
)

// Collector produces one Payload per call. It holds only the fixed
// tables from startup configuration; nothing is cached across calls.
type Collector struct {
	endpoints []config.Endpoint
	services  []config.Service
	diskPath  string
	prober    *probe.Prober
}

func NewCollector(cfg *config.Config) *Collector {
	return &Collector{
		endpoints: cfg.Endpoints,
		services:  cfg.Services,
		diskPath:  cfg.DiskPath,
		prober:    probe.New(),
	}
}

// NewCollectorWithProber is the test seam for the endpoint prober.
func NewCollectorWithProber(cfg *config.Config, p *probe.Prober) *Collector {
	c := NewCollector(cfg)
	c.prober = p
	return c
}

// Snapshot builds the complete payload. Local reads run sequentially
// (each is fast and independently fallible), endpoint probes fan out
// concurrently, service queries run one by one under their own
// timeouts. Nothing here returns an error: every failure degrades to a
// null field or an error string inside the payload.
func (c *Collector) Snapshot(ctx context.Context) Payload {
	uptime := sysinfo.UptimeSeconds()
	temp := sysinfo.CPUTempC()
	memStats := sysinfo.Mem()
	diskStats := sysinfo.Disk(c.diskPath)
	netStats := sysinfo.Net()

	return Payload{
		TS:              time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		PublicEndpoints: c.probeEndpoints(ctx),
		Pi: Host{
			UptimeSeconds: uptime,
			UptimeHuman:   sysinfo.HumanUptime(uptime),
			CPUTempC:      temp,
			Load1m:        sysinfo.Load1(),
			Mem:           memStats,
			Disk:          diskStats,
			Net:           netStats,
			Health:        Classify(memStats, diskStats, temp),
		},
		Services: c.probeServices(ctx),
	}
}

// probeEndpoints fans out over the fixed endpoint table and zips the
// results back in declaration order.
func (c *Collector) probeEndpoints(ctx context.Context) []EndpointStatus {
	urls := make([]string, len(c.endpoints))
	for i, ep := range c.endpoints {
		urls[i] = ep.URL
	}
	results := c.prober.CheckAll(ctx, urls)

	out := make([]EndpointStatus, len(c.endpoints))
	for i, ep := range c.endpoints {
		out[i] = EndpointStatus{ID: ep.ID, Name: ep.Name, URL: ep.URL, Result: results[i]}
	}
	return out
}

func (c *Collector) probeServices(ctx context.Context) map[string]systemd.UnitState {
	states := make(map[string]systemd.UnitState, len(c.services))
	for _, svc := range c.services {
		states[svc.Key] = systemd.Show(ctx, svc.Unit)
	}
	return states
}
