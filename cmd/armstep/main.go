// Command armstep is a headless driver around the armstep interpreter:
// a CLI for stepping or running a raw instruction image against a
// configurable memory map, plus an interactive single-step debugger.
// None of this is part of the interpreter's contract (spec.md's Design
// Notes call this out explicitly) — it exists only to exercise Step in
// a loop the way a real emulator shell would.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"armstep/board"
	"armstep/config"
	"armstep/cpu"
	"armstep/mem"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "armstep:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "armstep",
		Short: "Headless driver for the armstep T-encoding interpreter",
	}
	root.AddCommand(stepCmd(), runCmd(), debugCmd(), batchCmd())
	return root
}

// loadCPU builds a CPU wired to a Bus constructed from a memory map
// (mapPath, or config.Default if empty), loads image at loadAddr into
// the backing region that contains it, and resets with PC=loadAddr.
func loadCPU(mapPath, image string, loadAddr, sp uint32, b board.Board) (*cpu.CPU, error) {
	var m *config.Map
	if mapPath != "" {
		var err error
		m, err = config.Load(mapPath)
		if err != nil {
			return nil, err
		}
	} else {
		m = config.Default()
	}

	bus := mem.NewBus(m.BusRegions())

	data, err := os.ReadFile(image)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", image, err)
	}
	if err := loadInto(bus, loadAddr, data); err != nil {
		return nil, err
	}

	c := cpu.New(bus, b)
	c.Reset(loadAddr, sp)
	return c, nil
}

// loadInto copies data into whichever region contains addr. It uses
// the public Store8 path rather than reaching into Bus internals, so
// loading is exercised through the same typed interface the
// interpreter itself uses.
func loadInto(bus *mem.Bus, addr uint32, data []byte) error {
	for i, b := range data {
		bus.Store8(addr+uint32(i), uint32(b))
	}
	return nil
}

func stepCmd() *cobra.Command {
	var mapPath, image string
	var loadAddr, sp uint32
	var count int

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Execute N instructions and print the final register state",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCPU(mapPath, image, loadAddr, sp, board.NewLogger())
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				c.Step()
			}
			printState(c)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "memory map YAML file (default: built-in)")
	cmd.Flags().StringVar(&image, "image", "", "raw instruction image to load")
	cmd.Flags().Uint32Var(&loadAddr, "addr", 0x0800_0000, "address to load the image at and reset PC to")
	cmd.Flags().Uint32Var(&sp, "sp", 0x0300_7F00, "initial stack pointer")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of instructions to execute")
	cmd.MarkFlagRequired("image")
	return cmd
}

func runCmd() *cobra.Command {
	var mapPath, image string
	var loadAddr, sp uint32
	var cycleBudget uint64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute instructions until the cycle budget is exhausted",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCPU(mapPath, image, loadAddr, sp, board.NewLogger())
			if err != nil {
				return err
			}
			for c.Cycles < cycleBudget {
				c.Step()
			}
			printState(c)
			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "memory map YAML file (default: built-in)")
	cmd.Flags().StringVar(&image, "image", "", "raw instruction image to load")
	cmd.Flags().Uint32Var(&loadAddr, "addr", 0x0800_0000, "address to load the image at and reset PC to")
	cmd.Flags().Uint32Var(&sp, "sp", 0x0300_7F00, "initial stack pointer")
	cmd.Flags().Uint64Var(&cycleBudget, "cycles", 1000, "cycle budget to run for")
	cmd.MarkFlagRequired("image")
	return cmd
}

func debugCmd() *cobra.Command {
	var mapPath, image string
	var loadAddr, sp uint32

	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Launch the interactive single-step TUI debugger",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCPU(mapPath, image, loadAddr, sp, board.NewLogger())
			if err != nil {
				return err
			}
			return cpu.Debug(c)
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "memory map YAML file (default: built-in)")
	cmd.Flags().StringVar(&image, "image", "", "raw instruction image to load")
	cmd.Flags().Uint32Var(&loadAddr, "addr", 0x0800_0000, "address to load the image at and reset PC to")
	cmd.Flags().Uint32Var(&sp, "sp", 0x0300_7F00, "initial stack pointer")
	cmd.MarkFlagRequired("image")
	return cmd
}

// batchCmd runs several images each to their own cycle budget
// concurrently, one CPU/Bus pair per image. This is safe precisely
// because each pair is wholly independent — the interpreter itself
// stays single-threaded per spec.md §5; errgroup only parallelizes
// across, never within, a single CPU's instruction stream.
func batchCmd() *cobra.Command {
	var mapPath string
	var loadAddr, sp uint32
	var cycleBudget uint64

	cmd := &cobra.Command{
		Use:   "batch [images...]",
		Short: "Run several images concurrently, each to the same cycle budget",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]uint64, len(args))
			var g errgroup.Group
			for i, image := range args {
				i, image := i, image
				g.Go(func() error {
					c, err := loadCPU(mapPath, image, loadAddr, sp, board.Null{})
					if err != nil {
						return fmt.Errorf("%s: %w", image, err)
					}
					for c.Cycles < cycleBudget {
						c.Step()
					}
					results[i] = c.Cycles
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for i, image := range args {
				fmt.Printf("%-40s cycles=%d\n", image, results[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "memory map YAML file (default: built-in)")
	cmd.Flags().Uint32Var(&loadAddr, "addr", 0x0800_0000, "address to load each image at and reset PC to")
	cmd.Flags().Uint32Var(&sp, "sp", 0x0300_7F00, "initial stack pointer")
	cmd.Flags().Uint64Var(&cycleBudget, "cycles", 1000, "cycle budget per image")
	return cmd
}

func printState(c *cpu.CPU) {
	for i := 0; i < 16; i += 4 {
		fmt.Printf("r%-2d=%08x r%-2d=%08x r%-2d=%08x r%-2d=%08x\n",
			i, c.Regs[i], i+1, c.Regs[i+1], i+2, c.Regs[i+2], i+3, c.Regs[i+3])
	}
	p := c.PSW
	fmt.Printf("mode=%s N=%v Z=%v C=%v V=%v cycles=%d\n", p.Mode, p.N, p.Z, p.C, p.V, c.Cycles)
}
