package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armstep/board"
)

func TestLoadCPUResetsPCToLoadAddress(t *testing.T) {
	img := filepath.Join(t.TempDir(), "image.bin")
	// MOV r0, #1 followed by 0x0000 (LSL r0, r0, #0); only the first
	// instruction is executed by this test.
	require.NoError(t, os.WriteFile(img, []byte{0x01, 0x20, 0x00, 0x00}, 0o644))

	c, err := loadCPU("", img, 0x0800_0000, 0x0300_7F00, board.Null{})
	require.NoError(t, err)

	assert.Equal(t, uint32(0x0800_0000), c.Regs[15])
	assert.Equal(t, uint32(0x0300_7F00), c.Regs[13])

	c.Step()
	assert.Equal(t, uint32(1), c.Regs[0])
}

func TestLoadCPURejectsMissingImage(t *testing.T) {
	_, err := loadCPU("", filepath.Join(t.TempDir(), "missing.bin"), 0x0800_0000, 0x0300_7F00, board.Null{})
	assert.Error(t, err)
}
