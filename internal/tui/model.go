// Package tui is an interactive preview for the compressor: paste or type
// text, adjust the aggressiveness level, and watch the compressed output,
// byte ratio, and token estimate update live. Structure follows the
// bubbletea Model/Init/Update/View split used elsewhere in this codebase's
// terminal tooling.
package tui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	psutilcpu "github.com/shirou/gopsutil/v3/cpu"
	psutilmem "github.com/shirou/gopsutil/v3/mem"

	"contextsqueeze/internal/config"
	"contextsqueeze/internal/tokencount"
	"contextsqueeze/pkg/squeeze"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00")).
			Padding(0, 2).
			Bold(true).
			Width(80)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4B5563")).
			Padding(0, 2).
			Width(80)

	outputViewStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#9CA3AF"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2563EB"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399")).
			Bold(true)

	copyNoticeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#10B981")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true)
)

// Model is the bubbletea model backing the preview TUI.
type Model struct {
	Input  textarea.Model
	Output viewport.Model

	Aggressiveness int
	cfg            *config.Config

	OutputBytes  string
	InputBytes   int
	OutputLen    int
	TokensBefore int
	TokensAfter  int

	ResourceData string

	ShowCopyNotice bool

	Width  int
	Height int
}

type resourceTickMsg string

// NewModel builds the initial preview model using the given configuration's
// default aggressiveness and token encoding.
func NewModel(cfg *config.Config) Model {
	input := textarea.New()
	input.Placeholder = "Paste or type text here, then press ctrl+r to compress..."
	input.Focus()
	input.ShowLineNumbers = false
	input.SetWidth(76)
	input.SetHeight(10)

	output := viewport.New(76, 10)
	output.Style = outputViewStyle

	return Model{
		Input:          input,
		Output:         output,
		Aggressiveness: cfg.DefaultAggressiveness,
		cfg:            cfg,
		Width:          80,
		Height:         24,
	}
}

// Init starts the resource usage ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, m.tickResources())
}

func (m Model) tickResources() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		cpuPercent, _ := psutilcpu.Percent(0, false)
		memInfo, _ := psutilmem.VirtualMemory()
		cpu := 0.0
		if len(cpuPercent) > 0 {
			cpu = cpuPercent[0]
		}
		mem := 0.0
		if memInfo != nil {
			mem = memInfo.UsedPercent
		}
		return resourceTickMsg(fmt.Sprintf("CPU: %.1f%% | RAM: %.1f%% | Go: %s", cpu, mem, runtime.Version()))
	})
}

// Update handles key, resize, and tick events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+r":
			m.compress()
		case "ctrl+y":
			if err := clipboard.WriteAll(m.OutputBytes); err == nil {
				m.ShowCopyNotice = true
				cmds = append(cmds, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return hideCopyNoticeMsg{} }))
			}
		case "+", "=":
			m.Aggressiveness = clamp(m.Aggressiveness+1, 0, 9)
		case "-", "_":
			m.Aggressiveness = clamp(m.Aggressiveness-1, 0, 9)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Input.SetWidth(msg.Width - 4)
		m.Output.Width = msg.Width - 4

	case resourceTickMsg:
		m.ResourceData = string(msg)
		cmds = append(cmds, m.tickResources())

	case hideCopyNoticeMsg:
		m.ShowCopyNotice = false
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	m.Output, cmd = m.Output.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

type hideCopyNoticeMsg struct{}

func (m *Model) compress() {
	input := []byte(m.Input.Value())
	out, err := squeeze.SqueezeEx(input, m.Aggressiveness)
	if err != nil {
		m.OutputBytes = fmt.Sprintf("error: %v", err)
		return
	}
	m.OutputBytes = string(out)
	m.InputBytes = len(input)
	m.OutputLen = len(out)
	m.TokensBefore = tokencount.Estimate(input, m.cfg.TokenEncoding)
	m.TokensAfter = tokencount.Estimate(out, m.cfg.TokenEncoding)
	m.Output.SetContent(m.OutputBytes)
}

// View renders the header, input/output panes, and footer.
func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("contextsqueeze preview — aggressiveness %d", m.Aggressiveness))

	ratio := 1.0
	if m.InputBytes > 0 {
		ratio = float64(m.OutputLen) / float64(m.InputBytes)
	}
	stats := statsStyle.Render(fmt.Sprintf("bytes %d -> %d (%.2fx)  tokens %d -> %d",
		m.InputBytes, m.OutputLen, ratio, m.TokensBefore, m.TokensAfter))

	notice := ""
	if m.ShowCopyNotice {
		notice = copyNoticeStyle.Render("copied to clipboard")
	}

	help := helpStyle.Render("ctrl+r compress · ctrl+y copy · +/- aggressiveness · esc quit")

	footer := footerStyle.Render(m.ResourceData)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		inputStyle.Render(m.Input.View()),
		stats,
		notice,
		outputViewStyle.Render(m.Output.View()),
		help,
		footer,
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
