package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/ui"
	"github.com/alexisbeaulieu97/boxlab/internal/ui/components"
)

const trackWidth = 24

type binding struct {
	field   style.Field
	control components.Control
}

// rolePanel is the column of controls bound to one element's record.
type rolePanel struct {
	role     style.Role
	bindings []binding
}

func newRolePanel(role style.Role, rec style.Record, limits style.Limits) *rolePanel {
	p := &rolePanel{role: role}
	for _, field := range style.Fields() {
		p.bindings = append(p.bindings, binding{field: field, control: newControl(role, field, rec, limits)})
	}
	return p
}

func newControl(role style.Role, field style.Field, rec style.Record, limits style.Limits) components.Control {
	changed := func(v style.Value) tea.Msg {
		return FieldChangedMsg{Role: role, Field: field, Value: v}
	}

	switch field.Kind() {
	case style.KindPixels:
		bounds, _ := limits.Range(field)
		px, _ := rec.Get(field).(style.Pixels)
		return components.NewRangeControl(field.Label(), int(px), func(v int) tea.Msg {
			return changed(style.Pixels(v))
		}).WithBounds(bounds).WithTrackWidth(trackWidth)
	case style.KindPosition:
		return components.NewChoiceControl(field.Label(), rec.Position.String(), style.PositionOptions(), func(v string) tea.Msg {
			return changed(style.Position(v))
		})
	case style.KindDisplay:
		return components.NewChoiceControl(field.Label(), rec.Display.String(), style.DisplayOptions(), func(v string) tea.Msg {
			return changed(style.Display(v))
		})
	default:
		return components.NewColorControl(field.Label(), rec.Background.String(), func(v string) tea.Msg {
			return changed(style.Color(v))
		})
	}
}

// sync pushes rec back into the controls after an accepted update.
func (p *rolePanel) sync(rec style.Record) {
	for _, b := range p.bindings {
		value := rec.Get(b.field)
		switch c := b.control.(type) {
		case *components.RangeControl:
			if px, ok := value.(style.Pixels); ok {
				c.SetValue(int(px))
			}
		case *components.ChoiceControl:
			c.SetValue(value.String())
		case *components.ColorControl:
			c.SetValue(value.String())
		}
	}
}

func (p *rolePanel) control(i int) components.Control {
	if i < 0 || i >= len(p.bindings) {
		return nil
	}
	return p.bindings[i].control
}

func (p *rolePanel) view(ctx components.RenderContext) string {
	children := make([]ui.Renderable, 0, len(p.bindings))
	for _, b := range p.bindings {
		children = append(children, b.control)
	}
	return components.NewPanel(children...).
		WithTitle(p.role.Title() + " Element").
		WithAppliers(components.AccentBorder(p.role)).
		ViewWithContext(ctx)
}
