package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/boxlab/internal/logger"
	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/ui/components"
)

// Layout selects how the controls and the preview share the screen.
type Layout string

const (
	LayoutAuto       Layout = "auto"
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
	controlsWidth = 60
)

// Options configures the application model.
type Options struct {
	Scale      components.Scale
	Animate    bool
	Transition time.Duration
	Shadow     bool
	Layout     Layout
	Theme      components.Theme
	Logger     *logger.Logger
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Scale:      components.DefaultScale(),
		Animate:    true,
		Transition: 300 * time.Millisecond,
		Shadow:     true,
		Layout:     LayoutAuto,
		Theme:      components.DefaultTheme(),
	}
}

// Model is the Bubbletea state of the box model explorer.
type Model struct {
	sheet  *style.Sheet
	panels [3]*rolePanel
	anim   *animator
	opts   Options
	log    *logger.Logger

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	focus    int

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel builds the application around sheet. A nil sheet starts from the
// default records.
func NewModel(sheet *style.Sheet, opts Options) Model {
	if sheet == nil {
		sheet = style.NewSheet()
	}
	if opts.Scale.PxPerColumn <= 0 || opts.Scale.PxPerRow <= 0 {
		opts.Scale = components.DefaultScale()
	}
	if opts.Theme.Box.ShadowChar == "" {
		// zero Theme
		opts.Theme = components.DefaultTheme()
	}
	if opts.Layout == "" {
		opts.Layout = LayoutAuto
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		sheet:    sheet,
		anim:     newAnimator(opts.Animate, opts.Transition),
		opts:     opts,
		log:      log,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(controlsWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	for _, role := range style.Roles() {
		cell := sheet.Cell(role)
		m.panels[role] = newRolePanel(role, cell.Record(), cell.Limits())
		m.anim.jump(role, cell.Record())
	}

	m.focused().Focus()
	m.refreshViewport()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	m.log.Info("box model explorer started")
	return nil
}

// Sheet returns the style records the model edits.
func (m Model) Sheet() *style.Sheet {
	return m.sheet
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// FocusedRole returns the element whose controls hold the focus.
func (m Model) FocusedRole() style.Role {
	return style.Role(m.focus / len(style.Fields()))
}

// FocusedField returns the field edited by the focused control.
func (m Model) FocusedField() style.Field {
	return m.panels[m.FocusedRole()].bindings[m.focus%len(style.Fields())].field
}

// Control returns the control bound to field of role.
func (m Model) Control(role style.Role, field style.Field) components.Control {
	panel := m.panels[role]
	if panel == nil {
		return nil
	}
	for _, b := range panel.bindings {
		if b.field == field {
			return b.control
		}
	}
	return nil
}

// Animating reports whether the preview is between two geometries.
func (m Model) Animating() bool {
	return !m.anim.settled()
}

// syncRole pulls the current record of role into its controls and retargets
// the preview animation. Models read the sheet instead of subscribing to it,
// so any number of models can be built on one sheet.
func (m Model) syncRole(role style.Role) {
	rec := m.sheet.Record(role)
	m.panels[role].sync(rec)
	m.anim.retarget(role, rec)
}

func (m Model) controlCount() int {
	return len(style.Roles()) * len(style.Fields())
}

func (m Model) focused() components.Control {
	perPanel := len(style.Fields())
	return m.panels[m.focus/perPanel].control(m.focus % perPanel)
}

// setFocus moves focus to index i, wrapping across the three panels.
func (m *Model) setFocus(i int) {
	n := m.controlCount()
	i = ((i % n) + n) % n
	if i == m.focus {
		return
	}
	m.focused().Blur()
	m.focus = i
	m.focused().Focus()
}

// moveWithinPanel moves focus by delta without leaving the current panel.
func (m *Model) moveWithinPanel(delta int) {
	perPanel := len(style.Fields())
	base := (m.focus / perPanel) * perPanel
	offset := min(max(m.focus-base+delta, 0), perPanel-1)
	m.setFocus(base + offset)
}
