package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesRegions(t *testing.T) {
	path := writeTemp(t, `
regions:
  - name: ram
    base: 0x03000000
    size: 0x8000
    prefetch16: 1
    prefetch32: 2
  - name: rom
    base: 0x08000000
    size: 0x20000
    prefetch16: 3
    prefetch32: 6
`)
	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Regions, 2)
	assert.Equal(t, "ram", m.Regions[0].Name)
	assert.Equal(t, uint32(0x0300_0000), m.Regions[0].Base)
	assert.Equal(t, uint64(3), m.Regions[1].Prefetch16)
}

func TestLoadRejectsNonPowerOfTwoSize(t *testing.T) {
	path := writeTemp(t, `
regions:
  - name: ram
    base: 0x0
    size: 0x3000
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyMap(t *testing.T) {
	path := writeTemp(t, "regions: []\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestBusRegionsAllocatesBackingArrays(t *testing.T) {
	m := Default()
	regions := m.BusRegions()
	require.Len(t, regions, 2)
	assert.Equal(t, int(0x8000), len(regions[0].Data))
}
