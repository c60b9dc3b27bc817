package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tilekit/tilekit/cmd/tilerctl/logger"
	"github.com/tilekit/tilekit/tiler"
	"github.com/tilekit/tilekit/tiler/reserve"
	"github.com/tilekit/tilekit/tiler/sim"
)

// scenarioProcess is the process identity every CLI request runs under.
const scenarioProcess = "tilerctl"

// scenario is one reservation workload: a container and an ordered sequence
// of requests to run against it.
type scenario struct {
	Container containerConfig `toml:"container"`
	Requests  []requestConfig `toml:"request"`
}

type containerConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// requestConfig is one reservation request. Kind selects the operation:
// "nv12" reserves co-packable NV12 buffer pairs, "blocks" reserves 2D blocks
// of a single format, "release" drops everything a group holds.
type requestConfig struct {
	Kind   string `toml:"kind"`
	Format string `toml:"format"` // blocks only: 8bit, 16bit, 32bit
	Count  int    `toml:"count"`
	Width  int    `toml:"width"`  // pixels
	Height int    `toml:"height"` // pixels
	Align  int    `toml:"align"`  // bytes
	Offset int    `toml:"offset"` // bytes
	Group  uint32 `toml:"group"`
	CoPack bool   `toml:"copack"` // nv12 only
}

// loadScenario parses a scenario file.
func loadScenario(path string) (*scenario, error) {
	var s scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	for i, req := range s.Requests {
		switch req.Kind {
		case "nv12", "release":
		case "blocks":
			if _, err := parseFormat(req.Format); err != nil {
				return nil, fmt.Errorf("request %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("request %d: unknown kind %q", i, req.Kind)
		}
	}
	return &s, nil
}

func parseFormat(s string) (tiler.Format, error) {
	switch s {
	case "8bit":
		return tiler.Fmt8Bit, nil
	case "16bit":
		return tiler.Fmt16Bit, nil
	case "32bit":
		return tiler.Fmt32Bit, nil
	}
	return tiler.FmtInvalid, fmt.Errorf("unknown format %q", s)
}

// runScenario executes every request of s in order against a fresh container
// and returns it for inspection.
func runScenario(s *scenario) *sim.Container {
	c := sim.New(s.Container.Width, s.Container.Height)
	r := reserve.New(c)

	for i, req := range s.Requests {
		logger.L.Info("request",
			"index", i, "kind", req.Kind, "count", req.Count, "group", req.Group)
		switch req.Kind {
		case "nv12":
			r.ReserveNV12(req.Count, req.Width, req.Height, req.Align, req.Offset,
				req.Group, scenarioProcess, req.CoPack)
		case "blocks":
			f, _ := parseFormat(req.Format)
			r.ReserveBlocks(req.Count, f, req.Width, req.Height, req.Align, req.Offset,
				req.Group, scenarioProcess)
		case "release":
			r.UnreserveBlocks(req.Group, scenarioProcess)
		}
	}
	return c
}

// groupIDs returns the distinct group ids named by the scenario, in first-use
// order.
func (s *scenario) groupIDs() []uint32 {
	seen := make(map[uint32]bool)
	var ids []uint32
	for _, req := range s.Requests {
		if !seen[req.Group] {
			seen[req.Group] = true
			ids = append(ids, req.Group)
		}
	}
	return ids
}
