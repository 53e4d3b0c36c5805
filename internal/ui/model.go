// Package ui is the task manager window: an input form, the task
// table with its time-left column, a menu line, a status bar and
// blocking dialogs, driven by a bubbletea event loop.
//
// All store access goes through the TaskService interface so the
// window can be exercised in tests with a fake and a fixed clock.
package ui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"task-manager/internal/deadline"
	"task-manager/internal/model"
	"task-manager/internal/service"
)

// TaskService is what the window needs from the application layer.
// It is satisfied by *service.TaskService.
type TaskService interface {
	CreateTask(ctx context.Context, input service.TaskInput) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	DeleteTask(ctx context.Context, taskID uint) error
}

// RefreshMsg asks the window to recompute the time-left column. The
// scheduler delivers one per refresh interval via Program.Send.
type RefreshMsg struct{}

// tasksLoadedMsg carries the result of the initial load.
type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

// clearStatusMsg clears the status bar if no newer message replaced it.
type clearStatusMsg struct {
	seq int
}

// focusRegion identifies which widget receives keystrokes.
type focusRegion int

const (
	focusTitle focusRegion = iota
	focusDescription
	focusDeadline
	focusTable
	focusRegionCount
)

const (
	windowTitle = "Task Manager with deadline countdown"

	// statusTimeout matches how long confirmations stay in the status bar.
	statusTimeout = 2 * time.Second

	defaultOperationTimeout = 5 * time.Second

	// Lines used by everything except the table body: title, menu,
	// three labelled inputs, add button, delete button, status, help,
	// table header and spacing.
	chromeHeight  = 16
	minTableRows  = 3
	defaultHeight = 24
	defaultWidth  = 100
)

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now as the window's time source.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLocation sets the zone deadlines are parsed and shown in.
func WithLocation(loc *time.Location) Option {
	return func(m *Model) { m.location = loc }
}

// WithOperationTimeout bounds each store call.
func WithOperationTimeout(timeout time.Duration) Option {
	return func(m *Model) { m.timeout = timeout }
}

// WithTheme replaces DefaultTheme.
func WithTheme(theme Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is the bubbletea model for the task manager window.
type Model struct {
	service  TaskService
	now      func() time.Time
	location *time.Location
	timeout  time.Duration
	keys     KeyMap
	theme    Theme
	help     help.Model

	inputs [3]textinput.Model
	focus  focusRegion
	table  table.Model

	// tasks mirrors the table rows one to one. It is a derived copy of
	// the store, replaced wholesale after an add.
	tasks []model.Task
	// loaded is set once tasks holds a list at least as fresh as the
	// initial load, so a late initial load result is dropped.
	loaded bool

	dialog    *dialog
	status    string
	statusSeq int

	width  int
	height int
}

// NewModel builds the window around svc. The deadline field starts at
// the current time.
func NewModel(svc TaskService, options ...Option) Model {
	m := Model{
		service:  svc,
		now:      time.Now,
		location: time.Local,
		timeout:  defaultOperationTimeout,
		keys:     DefaultKeyMap,
		theme:    DefaultTheme,
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, option := range options {
		option(&m)
	}

	placeholders := [3]string{"Title", "Description (optional)", deadline.Layout}
	for i := range m.inputs {
		input := textinput.New()
		input.Prompt = "> "
		input.Placeholder = placeholders[i]
		input.CharLimit = 256
		input.Width = 60
		m.inputs[i] = input
	}
	m.inputs[focusDeadline].CharLimit = len(deadline.Layout)
	m.resetDeadline()
	m.inputs[focusTitle].Focus()

	m.table = table.New(
		table.WithColumns(columns()),
		table.WithHeight(m.tableHeight()),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.BorderColor).
		BorderBottom(true).
		Bold(true).
		Foreground(m.theme.HeaderForeground)
	styles.Selected = styles.Selected.
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground).
		Bold(false)
	m.table.SetStyles(styles)

	return m
}

// columns lays out the table: id, title, description, deadline, time left.
func columns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Title", Width: 20},
		{Title: "Description", Width: 30},
		{Title: "Deadline", Width: 20},
		{Title: "Time left", Width: 15},
	}
}

// Init loads the task list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadTasks)
}

func (m Model) loadTasks() tea.Msg {
	ctx, cancel := m.operationContext()
	defer cancel()
	tasks, err := m.service.ListTasks(ctx)
	return tasksLoadedMsg{tasks: tasks, err: err}
}

// Update handles one event. Store calls happen inline so every action
// is complete before the next event is processed.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case tasksLoadedMsg:
		if m.loaded {
			return m, nil
		}
		if msg.err != nil {
			m.dialog = errorDialog(msg.err)
			return m, nil
		}
		m.setTasks(msg.tasks)
		return m, nil

	case RefreshMsg:
		m.renderRows()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.dialog != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dialog = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.About):
		m.dialog = aboutDialog()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusRegionCount)
	case key.Matches(msg, m.keys.Previous):
		return m, m.setFocus((m.focus + focusRegionCount - 1) % focusRegionCount)
	}

	if m.focus == focusTable {
		if key.Matches(msg, m.keys.Delete) {
			return m, m.deleteSelected()
		}
		return m.forward(msg)
	}

	if key.Matches(msg, m.keys.Submit) {
		return m, m.submit()
	}

	if m.focus == focusDeadline {
		switch {
		case key.Matches(msg, m.keys.HourLater):
			m.stepDeadline(time.Hour)
			return m, nil
		case key.Matches(msg, m.keys.HourEarlier):
			m.stepDeadline(-time.Hour)
			return m, nil
		case key.Matches(msg, m.keys.DayLater):
			m.stepDeadline(24 * time.Hour)
			return m, nil
		case key.Matches(msg, m.keys.DayEarlier):
			m.stepDeadline(-24 * time.Hour)
			return m, nil
		}
	}

	return m.forward(msg)
}

// forward passes msg to the focused widget.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTable {
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(next focusRegion) tea.Cmd {
	if m.focus == focusTable {
		m.table.Blur()
	} else {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if next == focusTable {
		m.table.Focus()
		return nil
	}
	return m.inputs[next].Focus()
}

// submit validates and stores the form. If the task is not stored the
// form keeps what the user typed.
func (m *Model) submit() tea.Cmd {
	input := service.TaskInput{
		Title:       m.inputs[focusTitle].Value(),
		Description: m.inputs[focusDescription].Value(),
		Deadline:    m.inputs[focusDeadline].Value(),
	}

	ctx, cancel := m.operationContext()
	defer cancel()

	task, err := m.service.CreateTask(ctx, input)
	if err != nil {
		m.dialog = errorDialog(err)
		return nil
	}

	m.inputs[focusTitle].Reset()
	m.inputs[focusDescription].Reset()
	m.resetDeadline()

	// TODO: append the returned task instead of reloading once the
	// list grows large enough for the full reload to matter.
	tasks, err := m.service.ListTasks(ctx)
	if err != nil {
		// The task is stored; show it and say the rest may be stale.
		m.setTasks(append(m.tasks, *task))
		m.dialog = reloadFailedDialog(err)
	} else {
		m.setTasks(tasks)
	}
	m.selectTask(task.ID)

	return m.setStatus("Task added")
}

// deleteSelected removes the highlighted row from the store and from
// the table. With no rows there is nothing selected and no store call.
func (m *Model) deleteSelected() tea.Cmd {
	index := m.table.Cursor()
	if len(m.tasks) == 0 || index < 0 || index >= len(m.tasks) {
		return nil
	}
	taskID := m.tasks[index].ID

	ctx, cancel := m.operationContext()
	defer cancel()

	if err := m.service.DeleteTask(ctx, taskID); err != nil {
		m.dialog = errorDialog(err)
		return nil
	}

	m.tasks = slices.Delete(m.tasks, index, index+1)
	m.renderRows()
	return m.setStatus("Task deleted")
}

func (m *Model) stepDeadline(step time.Duration) {
	current, err := deadline.Parse(m.inputs[focusDeadline].Value(), m.location)
	if err != nil {
		return
	}
	m.inputs[focusDeadline].SetValue(deadline.Format(current.Add(step)))
	m.inputs[focusDeadline].CursorEnd()
}

func (m *Model) resetDeadline() {
	m.inputs[focusDeadline].SetValue(deadline.Format(m.now().In(m.location)))
	m.inputs[focusDeadline].CursorEnd()
}

func (m *Model) setTasks(tasks []model.Task) {
	m.tasks = tasks
	m.loaded = true
	m.renderRows()
}

// renderRows rebuilds the table rows from m.tasks with a fresh time-left
// column. It never touches the store.
func (m *Model) renderRows() {
	now := m.now()
	rows := make([]table.Row, 0, len(m.tasks))
	for _, task := range m.tasks {
		rows = append(rows, table.Row{
			strconv.FormatUint(uint64(task.ID), 10),
			task.Title,
			task.DescriptionText(),
			task.Deadline,
			deadline.Describe(task.Deadline, now, m.location),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) selectTask(taskID uint) {
	for i, task := range m.tasks {
		if task.ID == taskID {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) tableHeight() int {
	return max(m.height-chromeHeight, minTableRows)
}

// View renders the window, with an open dialog spliced over the center.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.AccentForeground).
		Background(m.theme.Accent).
		Padding(0, 1)
	menuStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.NormalText)
	focusedLabelStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
	buttonStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentForeground).
		Background(m.theme.Accent).
		Padding(0, 1)
	statusStyle := lipgloss.NewStyle().Foreground(m.theme.NormalText)

	var b strings.Builder
	b.WriteString(titleStyle.Render(windowTitle))
	b.WriteByte('\n')
	b.WriteString(menuStyle.Render(fmt.Sprintf("File: %s exit    Help: %s about",
		m.keys.Quit.Help().Key, m.keys.About.Help().Key)))
	b.WriteString("\n\n")

	labels := [3]string{"Title:", "Description:", "Deadline:"}
	for i, label := range labels {
		style := labelStyle
		if m.focus == focusRegion(i) {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(label))
		b.WriteByte('\n')
		b.WriteString(m.inputs[i].View())
		b.WriteByte('\n')
	}
	b.WriteString(buttonStyle.Render("Add task (" + m.keys.Submit.Help().Key + ")"))
	b.WriteString("\n\n")

	tableBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.BorderColor)
	if m.focus == focusTable {
		tableBorder = tableBorder.BorderForeground(m.theme.Accent)
	}
	b.WriteString(tableBorder.Render(m.table.View()))
	b.WriteByte('\n')
	b.WriteString(buttonStyle.Render("Delete task (" + m.keys.Delete.Help().Key + ")"))
	b.WriteByte('\n')

	status := m.status
	if pad := m.width - ansi.StringWidth(status); pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))

	view := b.String()
	if m.dialog == nil {
		return view
	}

	lines := m.dialog.render(m.theme)
	anchorX, anchorY := centerAnchor(m.width, m.height, ansi.StringWidth(lines[0]), len(lines))
	return spliceOverlay(view, lines, anchorX, anchorY)
}
