package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilekit/tilekit/tiler"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
[container]
width = 256
height = 128

[[request]]
kind = "nv12"
count = 9
width = 176
height = 144
align = 256
offset = 128
group = 1
copack = true

[[request]]
kind = "blocks"
format = "8bit"
count = 10
width = 4160
height = 64
align = 64
group = 2
`)

	s, err := loadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 256, s.Container.Width)
	require.Len(t, s.Requests, 2)

	nv12 := s.Requests[0]
	assert.Equal(t, "nv12", nv12.Kind)
	assert.Equal(t, 9, nv12.Count)
	assert.True(t, nv12.CoPack)
	assert.Equal(t, uint32(1), nv12.Group)

	blocks := s.Requests[1]
	assert.Equal(t, "blocks", blocks.Kind)
	assert.Equal(t, "8bit", blocks.Format)

	assert.Equal(t, []uint32{1, 2}, s.groupIDs())
}

func TestLoadScenario_Rejects(t *testing.T) {
	_, err := loadScenario(writeScenario(t, `
[[request]]
kind = "defrag"
`))
	assert.ErrorContains(t, err, "unknown kind")

	_, err = loadScenario(writeScenario(t, `
[[request]]
kind = "blocks"
format = "24bit"
`))
	assert.ErrorContains(t, err, "unknown format")
}

func TestParseFormat(t *testing.T) {
	f, err := parseFormat("16bit")
	require.NoError(t, err)
	assert.Equal(t, tiler.Fmt16Bit, f)

	_, err = parseFormat("")
	assert.Error(t, err)
}

// TestRunScenario drives a reserve-then-release workload and checks the
// container state after each phase is reflected in the final occupancy.
func TestRunScenario(t *testing.T) {
	s := &scenario{
		Requests: []requestConfig{
			{Kind: "nv12", Count: 9, Width: 176, Height: 144, Align: 256, Offset: 128, Group: 1, CoPack: true},
			{Kind: "release", Group: 1},
			{Kind: "nv12", Count: 9, Width: 176, Height: 144, Align: 256, Offset: 128, Group: 2, CoPack: true},
		},
	}

	c := runScenario(s)

	assert.Nil(t, c.ReservedAreas(scenarioProcess, 1))
	areas := c.ReservedAreas(scenarioProcess, 2)
	require.Len(t, areas, 1)
	assert.Equal(t, 9, areas[0].Blocks)
	assert.Equal(t, 192, c.Stats().SlotsUsed)
}
