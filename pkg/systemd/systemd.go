// Package systemd queries unit state through `systemctl show`, which
// has stable machine-readable output.
package systemd

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const showTimeout = 1500 * time.Millisecond

// UnitState reports the coarse/fine lifecycle of one unit. Nil states
// mean the query failed or systemd reported nothing; callers never see
// an error from this package.
type UnitState struct {
	Unit        string  `json:"unit"`
	ActiveState *string `json:"active_state"`
	SubState    *string `json:"sub_state"`
}

// Show queries ActiveState/SubState for a unit. Any failure (missing
// binary, nonzero exit, timeout) yields a UnitState with nil states.
func Show(ctx context.Context, unit string) UnitState {
	st := UnitState{Unit: unit}
	ctx, cancel := context.WithTimeout(ctx, showTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "systemctl", "show", unit,
		"--no-pager", "--property=ActiveState,SubState").CombinedOutput()
	if err != nil {
		return st
	}
	st.ActiveState, st.SubState = parseShow(string(out))
	return st
}

// parseShow scans show output line by line. An empty value after "="
// is treated as absent.
func parseShow(out string) (active, sub *string) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "ActiveState="); ok && v != "" {
			active = &v
		} else if v, ok := strings.CutPrefix(line, "SubState="); ok && v != "" {
			sub = &v
		}
	}
	return active, sub
}
