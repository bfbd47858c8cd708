package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/horae/internal/cli/formatter"
	"github.com/alexanderramin/horae/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Interactive view of today's blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				plan, err := app.Day.Blocks(context.Background(), date)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatDayPlan(plan))
				return nil
			}
			p := tea.NewProgram(newTodayModel(app, date), tea.WithOutput(os.Stdout))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "Day to view (YYYY-MM-DD)")

	return cmd
}

type todayKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Done     key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func defaultTodayKeys() todayKeyMap {
	return todayKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
		MoveUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move block up")),
		MoveDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move block down")),
		Done:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "project done from today")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// todayLoadedMsg carries a freshly resolved day plan into the model.
type todayLoadedMsg struct {
	plan *domain.DayPlan
	err  error
}

// todayModel is the interactive day view: a cursor over the block list
// with move-up/move-down re-packing through the day service.
type todayModel struct {
	app     *App
	date    string
	keys    todayKeyMap
	plan    *domain.DayPlan
	cursor  int
	loading bool
	status  string
}

func newTodayModel(app *App, date string) *todayModel {
	return &todayModel{app: app, date: date, keys: defaultTodayKeys(), loading: true}
}

func (m *todayModel) Init() tea.Cmd {
	return m.load()
}

func (m *todayModel) load() tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		plan, err := app.Day.Blocks(context.Background(), date)
		return todayLoadedMsg{plan: plan, err: err}
	}
}

func (m *todayModel) moveBlock(from, to int) tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		plan, err := app.Day.Move(context.Background(), date, from, to)
		return todayLoadedMsg{plan: plan, err: err}
	}
}

// markDone flags the block's project as done from this day onward, then
// reloads so the folded layout shows immediately.
func (m *todayModel) markDone(projectID string, dayIndex int) tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		if err := app.Plan.MarkDoneFrom(context.Background(), date, projectID, dayIndex); err != nil {
			return todayLoadedMsg{err: err}
		}
		plan, err := app.Day.Blocks(context.Background(), date)
		return todayLoadedMsg{plan: plan, err: err}
	}
}

func (m *todayModel) blockCount() int {
	if m.plan == nil {
		return 0
	}
	return len(m.plan.Blocks)
}

func (m *todayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todayLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.plan = msg.plan
		if m.cursor >= len(m.plan.Blocks) {
			m.cursor = len(m.plan.Blocks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.blockCount()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.MoveUp):
			if m.cursor > 0 && m.plan != nil {
				from := m.cursor
				m.cursor--
				m.status = ""
				return m, m.moveBlock(from, from-1)
			}
		case key.Matches(msg, m.keys.MoveDown):
			if m.plan != nil && m.cursor < m.blockCount()-1 {
				from := m.cursor
				m.cursor++
				m.status = ""
				return m, m.moveBlock(from, from+1)
			}
		case key.Matches(msg, m.keys.Done):
			if m.plan != nil && m.cursor < m.blockCount() {
				b := m.plan.Blocks[m.cursor]
				if b.Kind == domain.BlockWork && b.ProjectRef != "" {
					m.status = ""
					return m, m.markDone(b.ProjectRef, m.plan.DayIndex)
				}
			}
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *todayModel) View() string {
	if m.loading {
		return formatter.StyleDim.Render("Loading...")
	}
	if m.plan == nil {
		return formatter.StyleRed.Render(m.status)
	}

	out := formatter.StyleHeader.Render(m.plan.Label)
	if m.plan.Date != "" {
		out += formatter.StyleDim.Render("  " + m.plan.Date)
	}
	out += "\n\n"

	if len(m.plan.Blocks) == 0 {
		out += formatter.StyleDim.Render("  (no blocks)") + "\n"
	}
	for i, b := range m.plan.Blocks {
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}
		line := fmt.Sprintf("%s  %s %s",
			formatter.ClockRange(b.StartMinutes, b.EndMinutes),
			formatter.BlockGlyph(b), b.Label)
		if b.Locked() {
			line += formatter.StyleDim.Render("  (fixed)")
		}
		if b.Overflow {
			line += formatter.StyleRed.Render("  past day end")
		}
		if i == m.cursor {
			line = formatter.StyleBold.Render(line)
		}
		out += prefix + line + "\n"
	}

	if m.status != "" {
		out += "\n" + formatter.StyleRed.Render(m.status) + "\n"
	}
	out += "\n" + formatter.StyleDim.Render("↑/↓ cursor · K/J move block · d done from today · r refresh · q quit") + "\n"
	return out
}
