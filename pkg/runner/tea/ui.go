package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeWrite
	modeMoodSelect
	modeSearch
	modeCommand
	modeHelp
)

// result item for the search list
type resultItem struct{ r *search.Result }

func (it resultItem) Title() string {
	g := it.r.Entry.Mood.Glyph()
	return fmt.Sprintf("%s %s  %s", g.Symbol, it.r.Entry.Date, entry.Excerpt(it.r.Entry.Content, 50))
}
func (it resultItem) Description() string { return "" }
func (it resultItem) FilterValue() string { return it.r.Entry.Content }

// Model contains UI state
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	// cursor is the selected date; the visible month follows it.
	cursor  time.Time
	entries map[string]*entry.Entry

	resList list.Model
	input   textinput.Model

	status    string
	showStats bool

	moodOptions []mood.Mood
	moodIndex   int
	pendingText string

	awaitingDD bool
	lastDTime  time.Time

	changes <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	rl := list.New([]list.Item{}, d, 60, 12)
	rl.Title = "Results"
	rl.SetShowHelp(false)
	rl.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = entry.MaxContentLength
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		svc:         svc,
		ctx:         context.Background(),
		mode:        modeNormal,
		cursor:      time.Now(),
		entries:     map[string]*entry.Entry{},
		resList:     rl,
		input:       ti,
		status:      "NORMAL: h/l day, j/k week, [/] month, t today, enter write, dd delete, / search, s stats, ? help",
		moodOptions: mood.All(),
	}
	return m
}

// Init loads initial data and starts the change watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEntries(), m.startWatch())
}

func (m *Model) loadEntries() tea.Cmd {
	return func() tea.Msg {
		all, err := m.svc.EntryMap(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{all}
	}
}

func (m *Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.svc.Watch(m.ctx)
		if err != nil || ch == nil {
			// Remote backends have no change feed; manual refresh only.
			return nil
		}
		return watchStartedMsg{ch}
	}
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// messages
type errMsg struct{ err error }
type entriesLoadedMsg struct{ entries map[string]*entry.Entry }
type watchStartedMsg struct{ ch <-chan store.Event }
type storeChangedMsg struct{}

func (m *Model) selectedDate() string {
	return timeutil.FormatDate(m.cursor)
}

func (m *Model) selectedEntry() *entry.Entry {
	return m.entries[m.selectedDate()]
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case entriesLoadedMsg:
		m.entries = msg.entries
	case watchStartedMsg:
		m.changes = msg.ch
		cmds = append(cmds, waitForChange(m.changes))
	case storeChangedMsg:
		cmds = append(cmds, m.loadEntries())
		if m.changes != nil {
			cmds = append(cmds, waitForChange(m.changes))
		}
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeMoodSelect:
			m.updateMoodSelect(msg, &cmds)
		case modeWrite:
			m.updateWrite(msg, &cmds)
		case modeSearch:
			m.updateSearch(msg, &cmds)
		case modeCommand:
			m.updateCommand(msg, &cmds)
		case modeNormal:
			m.updateNormal(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case ":":
		m.enterCommandMode(cmds)

	// day and week movement
	case "h", "left":
		m.cursor = m.cursor.AddDate(0, 0, -1)
	case "l", "right":
		m.cursor = m.cursor.AddDate(0, 0, 1)
	case "j", "down":
		m.cursor = m.cursor.AddDate(0, 0, 7)
	case "k", "up":
		m.cursor = m.cursor.AddDate(0, 0, -7)

	// month movement keeps the day number; overflow rolls forward, so
	// Jan 31 plus one month lands on Mar 2 or 3.
	case "]", "n":
		m.cursor = m.cursor.AddDate(0, 1, 0)
	case "[", "p":
		m.cursor = m.cursor.AddDate(0, -1, 0)
	case "{":
		m.cursor = m.cursor.AddDate(-1, 0, 0)
	case "}":
		m.cursor = m.cursor.AddDate(1, 0, 0)

	case "t":
		m.cursor = time.Now()

	case "g":
		m.cursor = time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, time.Local)
	case "G":
		m.cursor = time.Date(m.cursor.Year(), m.cursor.Month(),
			calendar.DaysIn(m.cursor.Year(), m.cursor.Month()), 0, 0, 0, 0, time.Local)

	// write or edit the selected day
	case "enter", "i", "o":
		if !calendar.Selectable(m.selectedDate(), m.svc.Today()) {
			m.status = "Cannot write in the future"
			return
		}
		m.mode = modeWrite
		m.input.Placeholder = "How was the day?"
		if e := m.selectedEntry(); e != nil {
			m.input.SetValue(e.Content)
			m.moodIndex = m.findMoodIndex(e.Mood)
		} else {
			m.input.SetValue("")
			m.moodIndex = m.findMoodIndex(mood.Default)
		}
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)

	// delete with dd
	case "d":
		if m.selectedEntry() == nil {
			return
		}
		if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
			if err := m.svc.DeleteEntry(m.ctx, m.selectedDate()); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			} else {
				m.status = "Deleted"
				*cmds = append(*cmds, m.loadEntries())
			}
			m.awaitingDD = false
		} else {
			m.awaitingDD = true
			m.lastDTime = time.Now()
		}

	case "/":
		m.mode = modeSearch
		m.input.Reset()
		m.input.Placeholder = "search"
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
		m.status = "SEARCH: enter to run, esc to cancel"

	case "s":
		m.showStats = !m.showStats

	case "r":
		*cmds = append(*cmds, m.loadEntries())
	case "?":
		m.mode = modeHelp
	case "q":
		m.status = "Use :q or :exit to quit"
	}
}

func (m *Model) updateWrite(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.mode = modeNormal
			m.input.Reset()
			m.input.Blur()
			m.status = "Write cancelled"
			return
		}
		m.pendingText = text
		m.mode = modeMoodSelect
		m.input.Blur()
		m.status = "Choose a mood for the day"
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Write cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateMoodSelect(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeNormal
		m.pendingText = ""
		m.input.Reset()
		m.status = "Write cancelled"
	case "enter":
		chosen := m.moodOptions[m.moodIndex]
		if _, err := m.svc.SaveEntry(m.ctx, m.selectedDate(), m.pendingText, string(chosen)); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		} else {
			m.status = "Saved " + m.selectedDate()
			*cmds = append(*cmds, m.loadEntries())
		}
		m.mode = modeNormal
		m.pendingText = ""
		m.input.Reset()
	case "up", "k":
		if m.moodIndex > 0 {
			m.moodIndex--
		} else {
			m.moodIndex = len(m.moodOptions) - 1
		}
	case "down", "j":
		if m.moodIndex < len(m.moodOptions)-1 {
			m.moodIndex++
		} else {
			m.moodIndex = 0
		}
	}
}

func (m *Model) updateSearch(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.input.Focused() {
			query := strings.TrimSpace(m.input.Value())
			results, err := m.svc.Search(m.ctx, search.Options{
				Query:  query,
				SortBy: search.SortByRelevance,
			})
			if err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				return
			}
			items := make([]list.Item, 0, len(results))
			for _, r := range results {
				items = append(items, resultItem{r: r})
			}
			m.resList.SetItems(items)
			m.resList.Select(0)
			m.input.Blur()
			m.status = fmt.Sprintf("%d results; enter jumps to the day, esc closes", len(results))
			return
		}
		// jump to the selected result's day
		if sel := m.resList.SelectedItem(); sel != nil {
			it := sel.(resultItem)
			if when, err := calendar.GoToDate(it.r.Entry.Date); err == nil {
				m.cursor = when
			}
		}
		m.mode = modeNormal
		m.input.Reset()
	case "esc":
		if m.input.Focused() {
			m.mode = modeNormal
			m.input.Reset()
			m.input.Blur()
			m.status = "Search cancelled"
			return
		}
		// back to editing the query
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	default:
		if m.input.Focused() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			*cmds = append(*cmds, cmd)
			return
		}
		var cmd tea.Cmd
		m.resList, cmd = m.resList.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateCommand(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		switch input {
		case "q", "quit", "exit":
			*cmds = append(*cmds, tea.Quit)
		case "":
			// nothing
		default:
			m.status = fmt.Sprintf("Unknown command: %s", input)
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Command cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// View renders the calendar, the day preview, and overlays.
func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%s %d", m.cursor.Month(), m.cursor.Year()))

	grid := calendar.MonthGrid(m.cursor.Year(), m.cursor.Month(), m.entries,
		calendar.WithWeekStart(m.weekStart()))
	cal := calendar.Render(grid, calendar.RenderOptions{
		HeaderStyle:   lipgloss.NewStyle().Faint(true),
		AdjacentStyle: lipgloss.NewStyle().Faint(true),
		EmptyStyle:    lipgloss.NewStyle(),
		EntryStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		FutureStyle:   lipgloss.NewStyle().Faint(true),
		ShowHeader:    true,
		ShowAdjacent:  true,
		SelectedDate:  m.selectedDate(),
		WeekStart:     m.weekStart(),
	})

	body := title + "\n\n" + cal + "\n\n" + m.previewPane()

	if m.showStats {
		body += "\n\n" + m.statsPane()
	}

	switch m.mode {
	case modeWrite:
		body += "\n\n" + m.selectedDate() + " > " + m.input.View()
	case modeCommand:
		body += "\n\n:" + m.input.View()
	case modeMoodSelect:
		lines := []string{"Select mood (enter to confirm, esc to cancel):"}
		for i, opt := range m.moodOptions {
			g := opt.Glyph()
			indicator := "  "
			if i == m.moodIndex {
				indicator = "→ "
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", indicator, g.Symbol, g.Label))
		}
		panelStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
		body += "\n\n" + panelStyle.Render(strings.Join(lines, "\n"))
	case modeSearch:
		body += "\n\n/" + m.input.View() + "\n" + m.resList.View()
	case modeHelp:
		help := "Keys: h/l day, j/k week, [/] month, {/} year, g/G month edges, t today, enter/i write, dd delete, / search, s stats, r refresh, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	modeStr := map[mode]string{
		modeNormal: "NORMAL", modeWrite: "WRITE", modeMoodSelect: "MOOD",
		modeSearch: "SEARCH", modeCommand: "CMD", modeHelp: "HELP",
	}[m.mode]
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	return body + "\n\n" + status
}

func (m Model) previewPane() string {
	header := lipgloss.NewStyle().Bold(true).Underline(true)
	faint := lipgloss.NewStyle().Faint(true)

	e := m.selectedEntry()
	if e == nil {
		return header.Render(timeutil.DisplayDate(m.selectedDate())) + "\n" +
			faint.Render("no entry")
	}

	g := e.Mood.Glyph()
	width := m.termWidth - 4
	if width < 20 || width > 76 {
		width = 76
	}
	content := lipgloss.NewStyle().Width(width).Render(e.Content)
	return header.Render(e.Title()) + "\n" +
		faint.Render(fmt.Sprintf("%s %s · %d words", g.Symbol, g.Label, e.WordCount)) + "\n" +
		content
}

func (m Model) statsPane() string {
	stats := calendar.MonthlyStats(m.cursor.Year(), m.cursor.Month(), m.entries)
	faint := lipgloss.NewStyle().Faint(true)
	return faint.Render(fmt.Sprintf(
		"%d/%d days · %d%% · streak %d (longest %d) · %d words",
		stats.DaysWithEntries, stats.TotalDays, stats.CompletionRate,
		stats.Streak, stats.LongestStreak, stats.TotalWords))
}

func (m Model) weekStart() time.Weekday {
	if m.svc != nil {
		return m.svc.WeekStart
	}
	return calendar.DefaultWeekStart
}

func (m *Model) findMoodIndex(target mood.Mood) int {
	for i, opt := range m.moodOptions {
		if opt == target {
			return i
		}
	}
	return 0
}

func (m *Model) enterCommandMode(cmds *[]tea.Cmd) {
	m.mode = modeCommand
	m.input.Reset()
	m.input.Placeholder = "command"
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "COMMAND: type :q or :exit to quit"
}

// applySizes recalculates the result list size from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 4
	if width < 40 {
		width = 40
	}
	height := m.termHeight / 3
	if height < 6 {
		height = 6
	}
	m.resList.SetSize(width, height)
}

// Program entry
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
