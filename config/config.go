// Package config loads the YAML memory map the CLI and debugger wire
// into mem.Regions at startup: base address, size, backing kind and the
// per-region prefetch cycle costs the interpreter charges on every
// instruction fetch.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"armstep/mem"
)

// RegionSpec is one entry of the memory map file. Size must be a power
// of two; config.Load rejects anything else since mem.Region relies on
// (size-1) being a usable address mask.
type RegionSpec struct {
	Name       string `yaml:"name"`
	Base       uint32 `yaml:"base"`
	Size       uint32 `yaml:"size"`
	Prefetch16 uint64 `yaml:"prefetch16"`
	Prefetch32 uint64 `yaml:"prefetch32"`
}

// Map is the top-level shape of a memory map file.
type Map struct {
	Regions []RegionSpec `yaml:"regions"`
}

// Load reads and parses a memory map file at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if len(m.Regions) == 0 {
		return nil, fmt.Errorf("config: %s defines no regions", path)
	}
	for _, r := range m.Regions {
		if r.Size == 0 || r.Size&(r.Size-1) != 0 {
			return nil, fmt.Errorf("config: region %q size %#x is not a power of two", r.Name, r.Size)
		}
	}
	return &m, nil
}

// BusRegions builds the mem.Region slice mem.NewBus expects, allocating
// a fresh zeroed backing array per region.
func (m *Map) BusRegions() []mem.Region {
	out := make([]mem.Region, len(m.Regions))
	for i, r := range m.Regions {
		out[i] = mem.Region{
			Name:       r.Name,
			Base:       r.Base,
			Data:       make([]byte, r.Size),
			Prefetch16: r.Prefetch16,
			Prefetch32: r.Prefetch32,
		}
	}
	return out
}

// Default returns the memory map used when the CLI is not pointed at a
// config file: a single RAM-like region roomy enough for small test
// images, plus a ROM-like region at the conventional reset vector used
// throughout this package's tests.
func Default() *Map {
	return &Map{
		Regions: []RegionSpec{
			{Name: "ram", Base: 0x0300_0000, Size: 0x8000, Prefetch16: 1, Prefetch32: 2},
			{Name: "rom", Base: 0x0800_0000, Size: 0x0002_0000, Prefetch16: 3, Prefetch32: 6},
		},
	}
}
