package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// debuggerModel is the bubbletea model backing Debug: a thin view over
// a live CPU, stepping it one instruction per keypress.
type debuggerModel struct {
	cpu *CPU

	prevPC uint32
	steps  uint64
	err    error
}

// Init performs no initial command; the CPU is expected to already be
// Reset by the caller.
func (m debuggerModel) Init() tea.Cmd {
	return nil
}

// Update steps the CPU on space/j, quits on q.
func (m debuggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.Regs()[rPC]
			m.cpu.Step()
			m.steps++
		}
	}
	return m, nil
}

func (m debuggerModel) Regs() Regs {
	return m.cpu.Regs
}

// registerPanel renders R0-R15 two per line, highlighting SP/LR/PC by
// name instead of index.
func (m debuggerModel) registerPanel() string {
	var b strings.Builder
	names := [16]string{}
	for i := 0; i < 16; i++ {
		names[i] = fmt.Sprintf("r%d", i)
	}
	names[rSP], names[rLR], names[rPC] = "sp", "lr", "pc"

	for i := 0; i < 16; i += 2 {
		fmt.Fprintf(&b, "%-3s %08x   %-3s %08x\n",
			names[i], m.cpu.Regs[i], names[i+1], m.cpu.Regs[i+1])
	}
	return b.String()
}

// statusPanel renders the PSW and cycle counter.
func (m debuggerModel) statusPanel() string {
	p := m.cpu.PSW
	flag := func(set bool, ch string) string {
		if set {
			return ch
		}
		return "_"
	}
	return fmt.Sprintf(
		"mode %s   cycles %d   steps %d\nN%s Z%s C%s V%s\nprev pc %08x",
		p.Mode, m.cpu.Cycles, m.steps,
		flag(p.N, "N"), flag(p.Z, "Z"), flag(p.C, "C"), flag(p.V, "V"),
		m.prevPC,
	)
}

var debugPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// View lays out the register panel and status panel side by side, with
// a spew dump of the raw PSW struct underneath for anything the
// formatted panels don't surface.
func (m debuggerModel) View() string {
	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		debugPanelStyle.Render(m.registerPanel()),
		debugPanelStyle.Render(m.statusPanel()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, "", spew.Sdump(m.cpu.PSW))
}

// Debug starts an interactive single-step TUI over cpu. Space or j
// advances one instruction; q quits. The caller is responsible for
// Reset and for wiring Mem/Board before calling Debug.
func Debug(c *CPU) error {
	_, err := tea.NewProgram(debuggerModel{cpu: c}).Run()
	return err
}
