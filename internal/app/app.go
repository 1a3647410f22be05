package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmladder/internal/certification"
	"github.com/abhisek/pmladder/internal/llm"
	"github.com/abhisek/pmladder/internal/mentor"
	"github.com/abhisek/pmladder/internal/router"
	"github.com/abhisek/pmladder/internal/screen"
	"github.com/abhisek/pmladder/internal/screens/home"
	"github.com/abhisek/pmladder/internal/screens/welcome"
	"github.com/abhisek/pmladder/internal/session"
	"github.com/abhisek/pmladder/internal/ui/layout"
)

// Options carries the engine services into the TUI.
type Options struct {
	Session  *session.Manager
	Certs    *certification.Engine
	Mentor   *mentor.Service
	UsageLog *llm.MemoryUsageLog
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Manager
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel opening on the splash screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Session, opts.Certs, opts.Mentor, opts.UsageLog)
	}
	return AppModel{
		sess:   opts.Session,
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	learnerName, levelLabel := "", ""
	if l := m.sess.Learner(); l != nil {
		learnerName = l.Name
		levelLabel = l.LevelLabel
	}
	header := layout.RenderHeader(title, learnerName, levelLabel, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
