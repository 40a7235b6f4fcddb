// Package dashboard is the interactive view over the users collection:
// one fetch per session, a name filter, a local counter, and
// loading / error / ready screens.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"userdash/internal/derive"
	"userdash/internal/model"
)

type state int

const (
	stateLoading state = iota
	stateError
	stateReady
)

// Fetcher is the acquisition dependency; api.Client satisfies it.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]model.User, error)
}

// Messages produced by the fetch command.
type usersLoadedMsg struct {
	users []model.User
}

type fetchFailedMsg struct {
	err error
}

type Model struct {
	fetcher Fetcher
	logger  *zap.Logger

	state   state
	errMsg  string
	users   []model.User
	version uint64
	memo    *derive.Memo

	filter  textinput.Model
	counter int
	cursor  int

	spin spinner.Model
	keys keyMap
	help help.Model
	rows *rowCache

	width  int
	height int

	// ctx guards the in-flight fetch; cancel fires on teardown so a late
	// response is discarded instead of mutating state.
	ctx    context.Context
	cancel context.CancelFunc
}

// New builds the dashboard model. counter seeds the local counter and is
// the only externally configurable piece of view state.
func New(fetcher Fetcher, counter int, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Filter by name..."
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		fetcher: fetcher,
		logger:  logger,
		state:   stateLoading,
		memo:    &derive.Memo{},
		filter:  ti,
		counter: counter,
		spin:    sp,
		keys:    defaultKeyMap(),
		help:    help.New(),
		rows:    newRowCache(),
		width:   80,
		height:  24,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Teardown cancels any in-flight fetch. The runner defers it around
// Program.Run so quitting mid-load never leaks the request.
func (m Model) Teardown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Counter exposes the local counter, mostly for tests and the runner's
// exit summary.
func (m Model) Counter() int { return m.counter }

// fetchCmd runs the acquisition off the event loop. A cancelled fetch
// yields no message at all: teardown is not an error.
func (m Model) fetchCmd(ctx context.Context) tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		users, err := fetcher.FetchUsers(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fetchFailedMsg{err: err}
		}
		if ctx.Err() != nil {
			return nil
		}
		return usersLoadedMsg{users: users}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd(m.ctx))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.users = msg.users
		m.version++
		m.errMsg = ""
		m.state = stateReady
		m.cursor = 0
		m.rows.clear()
		m.filter.Focus()
		return m, nil

	case fetchFailedMsg:
		m.errMsg = msg.err.Error()
		m.state = stateError
		m.logger.Warn("acquisition failed", zap.String("error", m.errMsg))
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys that work in every state.
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "+":
		m.counter++
		return m, nil
	}

	switch m.state {
	case stateLoading:
		// Filter controls are disabled until the fetch settles.
		switch msg.String() {
		case "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case stateError:
		switch msg.String() {
		case "q", "esc":
			m.cancel()
			return m, tea.Quit
		case "r":
			// Manual retry: full reload, fresh context.
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.state = stateLoading
			m.errMsg = ""
			return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctx))
		}
		return m, nil
	}

	// Ready state: navigation and filtering.
	switch msg.String() {
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
		m.cancel()
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		filtered, _ := m.memo.Derive(m.users, m.version, m.filter.Value())
		if m.cursor < len(filtered)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, nil
	}

	// Everything else edits the filter verbatim.
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	switch m.state {
	case stateLoading:
		b.WriteString(titleStyle.Render("Users"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%s fetching users...\n", m.spin.View()))
		b.WriteString("\n")
		b.WriteString(m.counterLine())

	case stateError:
		b.WriteString(titleStyle.Render("Users"))
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("✖ " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("press r to retry"))
		b.WriteString("\n\n")
		b.WriteString(m.counterLine())

	case stateReady:
		filtered, total := m.memo.Derive(m.users, m.version, m.filter.Value())

		b.WriteString(fmt.Sprintf("%s   %s %d/%d  %s %d",
			titleStyle.Render("Users"),
			successStyle.Render("✔"), len(filtered), len(m.users),
			accentStyle.Render("Σ names"), total,
		))
		b.WriteString("\n\n")
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		if len(filtered) == 0 {
			b.WriteString(mutedStyle.Render("no matching users"))
			b.WriteString("\n")
		} else {
			rows := m.visibleRows(len(filtered))
			for i := 0; i < rows; i++ {
				b.WriteString(m.rows.render(filtered[i], i == m.cursor))
				b.WriteString("\n")
			}
			if rows < len(filtered) {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", len(filtered)-rows)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(m.counterLine())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return panelStyle.Render(b.String())
}

func (m Model) counterLine() string {
	return fmt.Sprintf("%s %d %s",
		pendingStyle.Render("Counter:"),
		m.counter,
		mutedStyle.Render("(+ to increment)"),
	)
}

// visibleRows caps the list to the terminal height, leaving room for the
// header, filter, stats and help chrome.
func (m Model) visibleRows(n int) int {
	max := m.height - 10
	if max < 3 {
		max = 3
	}
	if n < max {
		return n
	}
	return max
}
