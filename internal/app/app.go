// Package app contains the root application model: the boundary that maps
// menu actions onto registry and classroom operations.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vclass/internal/classroom"
	"vclass/internal/config"
	"vclass/internal/flags"
	"vclass/internal/keys"
	"vclass/internal/log"
	"vclass/internal/pubsub"
	"vclass/internal/ui/help"
	"vclass/internal/ui/menu"
	"vclass/internal/ui/prompt"
	"vclass/internal/ui/styles"
	"vclass/internal/ui/toaster"
	"vclass/internal/watcher"
)

// screen identifies what the main panel is showing.
type screen int

const (
	screenMenu screen = iota
	screenPrompt
)

// ReloadFunc re-reads the active config file. Wired by cmd; nil disables
// live reload handling.
type ReloadFunc func() (config.Config, error)

// outcome is the result of one dispatched action.
type outcome struct {
	toast  string
	style  toaster.Style
	output string
}

// Model is the root application state.
type Model struct {
	registry   *classroom.Registry
	cfg        config.Config
	configPath string
	reload     ReloadFunc
	flags      *flags.Registry

	screen  screen
	menu    menu.Model
	prompt  prompt.Model
	pending menu.Action
	stage   int
	values  map[string]string

	output string

	helpVisible bool
	help        help.Model

	toaster toaster.Model
	feed    []string

	keys keys.KeyMap

	activityCtx      context.Context
	activityCancel   context.CancelFunc
	activityListener *pubsub.ContinuousListener[classroom.Activity]

	watcherHandle   *watcher.Watcher
	watcherCtx      context.Context
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Event]

	width  int
	height int
}

// New creates the root model. configPath is the config file to watch for
// live reload; it may be empty when no config file is in use.
func New(registry *classroom.Registry, cfg config.Config, configPath string, reload ReloadFunc) Model {
	activityCtx, activityCancel := context.WithCancel(context.Background())
	activityListener := pubsub.NewContinuousListener(activityCtx, registry.Activity())

	var (
		watcherHandle   *watcher.Watcher
		watcherCtx      context.Context
		watcherCancel   context.CancelFunc
		watcherListener *pubsub.ContinuousListener[watcher.Event]
	)
	if cfg.AutoReload && configPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(configPath))
		if err == nil {
			if err := w.Start(); err == nil {
				watcherHandle = w
				watcherCtx, watcherCancel = context.WithCancel(context.Background())
				watcherListener = pubsub.NewContinuousListener(watcherCtx, w.Broker())
			} else {
				_ = w.Stop()
			}
		}
		// The app works fine without live reload - init errors are not fatal
	}

	featureFlags := flags.New(cfg.Flags)
	helpModal := help.New("dark")
	if featureFlags.Enabled(flags.FlagPlainHelp) {
		helpModal = help.NewPlain()
	}

	return Model{
		registry:         registry,
		cfg:              cfg,
		configPath:       configPath,
		reload:           reload,
		flags:            featureFlags,
		menu:             menu.New().SetShowHotkeys(cfg.UI.ShowHotkeys),
		help:             helpModal,
		toaster:          toaster.New(),
		keys:             keys.DefaultKeyMap(),
		activityCtx:      activityCtx,
		activityCancel:   activityCancel,
		activityListener: activityListener,
		watcherHandle:    watcherHandle,
		watcherCtx:       watcherCtx,
		watcherCancel:    watcherCancel,
		watcherListener:  watcherListener,
	}
}

// Close releases listener and watcher resources.
func (m *Model) Close() error {
	m.activityCancel()
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.activityListener.Listen()}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		m.help = m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case pubsub.Event[classroom.Activity]:
		m.feed = append(m.feed, msg.Payload.String())
		if max := m.activityLines(); len(m.feed) > max {
			m.feed = m.feed[len(m.feed)-max:]
		}
		return m, m.activityListener.Listen()

	case pubsub.Event[watcher.Event]:
		m = m.reloadConfig()
		return m, tea.Batch(m.watcherListener.Listen(), toaster.ScheduleDismiss(m.toastDuration()))

	case help.CloseMsg:
		m.helpVisible = false
		return m, nil

	case menu.SelectMsg:
		return m.handleSelect(msg.Action)

	case prompt.DoneMsg:
		for k, v := range msg.Values {
			m.values[k] = v
		}
		return m.continueFlow()

	case prompt.CancelMsg:
		m.screen = screenMenu
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.helpVisible {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.screen == screenMenu && key.Matches(msg, m.keys.Help) {
			m.helpVisible = true
			return m, nil
		}

		var cmd tea.Cmd
		switch m.screen {
		case screenPrompt:
			m.prompt, cmd = m.prompt.Update(msg)
		default:
			m.menu, cmd = m.menu.Update(msg)
		}
		return m, cmd
	}

	// Non-key messages (cursor blinks) still belong to the active prompt.
	if m.screen == screenPrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleSelect begins the flow for a chosen action. Actions without
// arguments run immediately; the rest start a prompt flow.
func (m Model) handleSelect(action menu.Action) (Model, tea.Cmd) {
	log.Debug(log.CatUI, "action selected", "action", action.Label())

	if action == menu.ActionExit {
		return m, tea.Quit
	}
	if action == menu.ActionListClassrooms {
		m.output = m.renderClassrooms()
		return m, nil
	}

	m.pending = action
	m.stage = 0
	m.values = make(map[string]string)
	m.prompt = prompt.New(action.Label(), stagesFor(action)[0])
	m.screen = screenPrompt
	return m, m.prompt.Init()
}

// stagesFor returns the prompt stages for an action. Stage boundaries are
// validation points: the classroom (and for submissions, the student) must
// exist before later values are asked for, matching the original console
// flow.
func stagesFor(action menu.Action) [][]prompt.Field {
	classroomField := prompt.Field{Key: "classroom", Label: "Classroom name", Placeholder: "Math101"}

	switch action {
	case menu.ActionAddClassroom:
		return [][]prompt.Field{{classroomField}}
	case menu.ActionRemoveClassroom:
		return [][]prompt.Field{{{Key: "classroom", Label: "Classroom name to remove"}}}
	case menu.ActionAddStudent:
		return [][]prompt.Field{
			{classroomField},
			{
				{Key: "id", Label: "Student ID", Placeholder: "S1"},
				{Key: "name", Label: "Student name"},
			},
		}
	case menu.ActionListStudents, menu.ActionListAssignments:
		return [][]prompt.Field{{classroomField}}
	case menu.ActionScheduleAssignment:
		return [][]prompt.Field{
			{classroomField},
			{
				{Key: "id", Label: "Assignment ID", Placeholder: "A1"},
				{Key: "title", Label: "Assignment title"},
				{Key: "due", Label: "Due date (e.g. 2025-10-10)"},
			},
		}
	case menu.ActionSubmitAssignment:
		return [][]prompt.Field{
			{classroomField},
			{{Key: "student", Label: "Student ID"}},
			{{Key: "assignment", Label: "Assignment ID"}},
		}
	default:
		return [][]prompt.Field{{classroomField}}
	}
}

// continueFlow validates the just-completed stage, then either starts the
// next stage or executes the action.
func (m Model) continueFlow() (Model, tea.Cmd) {
	if failed, ok := m.validateStage(); !ok {
		return m.finish(outcome{toast: failed, style: toaster.StyleError})
	}

	stages := stagesFor(m.pending)
	m.stage++
	if m.stage < len(stages) {
		m.prompt = prompt.New(m.pending.Label(), stages[m.stage])
		return m, m.prompt.Init()
	}

	return m.execute()
}

// validateStage checks intermediate lookups after each stage. AddClassroom
// has no lookups; everything else needs the classroom, and submissions
// need the student before the assignment id is prompted for.
func (m Model) validateStage() (string, bool) {
	needsClassroom := m.pending != menu.ActionAddClassroom && m.pending != menu.ActionRemoveClassroom

	if m.stage == 0 && needsClassroom {
		if _, ok := m.registry.Classroom(m.values["classroom"]); !ok {
			return "Classroom not found.", false
		}
	}
	if m.stage == 1 && m.pending == menu.ActionSubmitAssignment {
		c, ok := m.registry.Classroom(m.values["classroom"])
		if !ok {
			return "Classroom not found.", false
		}
		if _, ok := c.Student(m.values["student"]); !ok {
			return "Student not found.", false
		}
	}
	return "", true
}

// execute runs the pending action. A panic inside a dispatched action is
// recovered and surfaced as a generic error toast so the session survives.
func (m Model) execute() (Model, tea.Cmd) {
	var result outcome
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error(log.CatUI, "action panicked", "action", m.pending.Label(), "panic", r)
				result = outcome{toast: fmt.Sprintf("Error: %v", r), style: toaster.StyleError}
			}
		}()
		result = m.dispatch()
	}()
	return m.finish(result)
}

// finish returns to the menu and applies the outcome.
func (m Model) finish(result outcome) (Model, tea.Cmd) {
	m.screen = screenMenu
	if result.output != "" {
		m.output = result.output
	}
	if result.toast == "" {
		return m, nil
	}
	m.toaster = m.toaster.Show(result.toast, result.style)
	return m, toaster.ScheduleDismiss(m.toastDuration())
}

// dispatch maps the pending action and collected values onto one core
// operation. Duplicate and not-found results become toasts, never faults.
func (m Model) dispatch() outcome {
	name := m.values["classroom"]

	switch m.pending {
	case menu.ActionAddClassroom:
		if m.registry.AddClassroom(name) {
			return outcome{toast: "Classroom [" + name + "] has been created.", style: toaster.StyleSuccess}
		}
		return outcome{toast: "Classroom already exists.", style: toaster.StyleWarn}

	case menu.ActionRemoveClassroom:
		if m.registry.RemoveClassroom(name) {
			return outcome{toast: "Classroom removed.", style: toaster.StyleSuccess}
		}
		return outcome{toast: "Classroom not found.", style: toaster.StyleError}

	case menu.ActionAddStudent:
		c, ok := m.registry.Classroom(name)
		if !ok {
			return outcome{toast: "Classroom not found.", style: toaster.StyleError}
		}
		id := m.values["id"]
		if c.AddStudent(classroom.NewStudent(id, m.values["name"])) {
			return outcome{toast: "Student [" + id + "] enrolled in " + name, style: toaster.StyleSuccess}
		}
		return outcome{toast: "Student ID already exists in this class.", style: toaster.StyleWarn}

	case menu.ActionListStudents:
		c, ok := m.registry.Classroom(name)
		if !ok {
			return outcome{toast: "Classroom not found.", style: toaster.StyleError}
		}
		return outcome{output: renderStudents(c)}

	case menu.ActionScheduleAssignment:
		c, ok := m.registry.Classroom(name)
		if !ok {
			return outcome{toast: "Classroom not found.", style: toaster.StyleError}
		}
		if c.AddAssignment(classroom.NewAssignment(m.values["id"], m.values["title"], m.values["due"])) {
			return outcome{toast: "Assignment scheduled for " + name, style: toaster.StyleSuccess}
		}
		return outcome{toast: "Assignment ID already exists.", style: toaster.StyleWarn}

	case menu.ActionSubmitAssignment:
		c, ok := m.registry.Classroom(name)
		if !ok {
			return outcome{toast: "Classroom not found.", style: toaster.StyleError}
		}
		if _, ok := c.Student(m.values["student"]); !ok {
			return outcome{toast: "Student not found.", style: toaster.StyleError}
		}
		if c.SubmitAssignment(m.values["assignment"]) {
			return outcome{toast: "Assignment submitted by Student [" + m.values["student"] + "] in [" + name + "]", style: toaster.StyleSuccess}
		}
		return outcome{toast: "Assignment not found.", style: toaster.StyleError}

	case menu.ActionListAssignments:
		c, ok := m.registry.Classroom(name)
		if !ok {
			return outcome{toast: "Classroom not found.", style: toaster.StyleError}
		}
		return outcome{output: renderAssignments(c)}
	}

	return outcome{}
}

func (m Model) renderClassrooms() string {
	classrooms := m.registry.Classrooms()
	if len(classrooms) == 0 {
		return "No classrooms available."
	}
	var b strings.Builder
	b.WriteString("Classrooms:")
	for _, c := range classrooms {
		b.WriteString("\n- " + c.Name())
	}
	return b.String()
}

func renderStudents(c *classroom.Classroom) string {
	students := c.Students()
	if len(students) == 0 {
		return "No students enrolled."
	}
	var b strings.Builder
	b.WriteString("Students in " + c.Name() + ":")
	for _, s := range students {
		b.WriteString("\n- " + s.String())
	}
	return b.String()
}

func renderAssignments(c *classroom.Classroom) string {
	assignments := c.Assignments()
	if len(assignments) == 0 {
		return "No assignments scheduled."
	}
	var b strings.Builder
	b.WriteString("Assignments in " + c.Name() + ":")
	for _, a := range assignments {
		b.WriteString("\n- " + a.String())
	}
	return b.String()
}

// reloadConfig re-reads the config file and re-applies theme and UI
// settings.
func (m Model) reloadConfig() Model {
	if m.reload == nil {
		return m
	}
	cfg, err := m.reload()
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", m.configPath)
		m.toaster = m.toaster.Show("Config reload failed.", toaster.StyleWarn)
		return m
	}
	log.Info(log.CatConfig, "config reloaded", "path", m.configPath)
	m.cfg = cfg
	m.flags = flags.New(cfg.Flags)
	styles.ApplyTheme(cfg.Theme)
	m.menu = m.menu.SetShowHotkeys(cfg.UI.ShowHotkeys)
	m.toaster = m.toaster.Show("Config reloaded.", toaster.StyleInfo)
	return m
}

func (m Model) toastDuration() time.Duration {
	seconds := m.cfg.UI.ToastSeconds
	if seconds <= 0 {
		seconds = 3
	}
	return time.Duration(seconds) * time.Second
}

func (m Model) activityLines() int {
	lines := m.cfg.UI.ActivityLines
	if lines <= 0 {
		lines = 4
	}
	return lines
}

// Output returns the current output panel content.
func (m Model) Output() string {
	return m.output
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var left string
	switch m.screen {
	case screenPrompt:
		left = m.prompt.View()
	default:
		left = m.menu.View()
	}

	output := m.output
	if output == "" {
		output = styles.MutedStyle.Render("Results appear here.")
	}
	outputWidth := m.width - lipgloss.Width(left) - 4
	if outputWidth < 20 {
		outputWidth = 20
	}
	outputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(0, 1).
		Width(outputWidth).
		Render(output)

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", outputBox)

	var footer strings.Builder
	if len(m.feed) > 0 && !m.flags.Enabled(flags.FlagHideActivityFeed) {
		footer.WriteString("\n")
		for _, line := range m.feed {
			footer.WriteString(styles.MutedStyle.Render("· "+line) + "\n")
		}
	}
	footer.WriteString(styles.MutedStyle.Render("? help · ctrl+c quit"))

	base := main + "\n" + footer.String()

	if m.helpVisible {
		base = m.help.Overlay(base)
	}
	return m.toaster.Overlay(base, m.width, m.height)
}
