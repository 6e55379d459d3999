package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mehil/internal/cli/formatter"
	"github.com/alexanderramin/mehil/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// agendaLoadedMsg carries a fresh agenda listing.
type agendaLoadedMsg struct {
	entries []*domain.SavedDeadline
	err     error
}

// entryRemovedMsg reports the outcome of a delete.
type entryRemovedMsg struct {
	entry *domain.SavedDeadline
	err   error
}

type agendaKeyMap struct {
	Delete   key.Binding
	Upcoming key.Binding
	Quit     key.Binding
}

var agendaKeys = agendaKeyMap{
	Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "sil")),
	Upcoming: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "yaklaşanlar")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "çık")),
}

// agendaBrowser is a table of saved deadlines with delete support.
type agendaBrowser struct {
	ctx      context.Context
	app      *App
	table    table.Model
	entries  []*domain.SavedDeadline
	upcoming bool
	loading  bool
	status   string
	err      error
}

func newAgendaBrowser(ctx context.Context, app *App) *agendaBrowser {
	t := table.New(
		table.WithColumns(agendaColumns(80)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorHeader).
		Bold(false)
	t.SetStyles(styles)

	return &agendaBrowser{ctx: ctx, app: app, table: t, loading: true}
}

func agendaColumns(width int) []table.Column {
	title := width - 8 - 26 - 18 - 8
	if title < 12 {
		title = 12
	}
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "BAŞLIK", Width: title},
		{Title: "SON GÜN", Width: 26},
		{Title: "KALAN", Width: 18},
	}
}

func (m *agendaBrowser) Init() tea.Cmd {
	return m.load()
}

func (m *agendaBrowser) load() tea.Cmd {
	ctx, app, upcoming := m.ctx, m.app, m.upcoming
	return func() tea.Msg {
		var entries []*domain.SavedDeadline
		var err error
		if upcoming {
			entries, err = app.Agenda.ListUpcoming(ctx, app.now())
		} else {
			entries, err = app.Agenda.List(ctx)
		}
		return agendaLoadedMsg{entries: entries, err: err}
	}
}

func (m *agendaBrowser) remove(entry *domain.SavedDeadline) tea.Cmd {
	ctx, app := m.ctx, m.app
	return func() tea.Msg {
		removed, err := app.Agenda.Remove(ctx, entry.ID)
		return entryRemovedMsg{entry: removed, err: err}
	}
}

func (m *agendaBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetColumns(agendaColumns(msg.Width))
		if h := msg.Height - 6; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case agendaLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.setEntries(msg.entries)
		}
		return m, nil

	case entryRemovedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Silindi: %s", msg.entry.Title)
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, agendaKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, agendaKeys.Delete):
			if entry := m.selected(); entry != nil {
				return m, m.remove(entry)
			}
			return m, nil
		case key.Matches(msg, agendaKeys.Upcoming):
			m.upcoming = !m.upcoming
			m.status = ""
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *agendaBrowser) setEntries(entries []*domain.SavedDeadline) {
	m.entries = entries
	today := m.app.now()
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.DisplayID(),
			e.Title,
			e.DateLabel,
			formatter.RelativeDays(e.DaysLeft(today)),
		})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *agendaBrowser) selected() *domain.SavedDeadline {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.entries) {
		return nil
	}
	return m.entries[c]
}

func (m *agendaBrowser) View() string {
	var b strings.Builder

	title := "Süre Ajandası"
	if m.upcoming {
		title += " · yaklaşanlar"
	}
	b.WriteString(formatter.Header(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Yükleniyor…"))
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Hata: " + m.err.Error()))
	case len(m.entries) == 0:
		b.WriteString(formatter.Dim("Ajandada kayıtlı süre yok."))
	default:
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(formatter.Dim(helpLine(agendaKeys.Delete, agendaKeys.Upcoming, agendaKeys.Quit)))
	return b.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
