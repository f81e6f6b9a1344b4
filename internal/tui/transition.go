package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

var animatedFields = [...]style.Field{style.Padding, style.Margin, style.Width, style.Height}

const settleThreshold = 0.5

type axis struct {
	pos, vel, target float64
}

// animator eases the drawn box geometry toward the records. Records change
// at once; only what the preview draws lags behind.
type animator struct {
	enabled bool
	running bool
	spring  harmonica.Spring
	targets [3]style.Record
	axes    [3][len(animatedFields)]axis
}

func newAnimator(enabled bool, duration time.Duration) *animator {
	a := &animator{enabled: enabled && duration > 0}
	if a.enabled {
		// A critically damped spring covers ~99% of the distance in 6.6/ω.
		omega := 6.6 / duration.Seconds()
		a.spring = harmonica.NewSpring(harmonica.FPS(60), omega, 1.0)
	}
	return a
}

// jump places every axis of role at rec with no motion.
func (a *animator) jump(role style.Role, rec style.Record) {
	a.targets[role] = rec
	for i, field := range animatedFields {
		v := pixelsOf(rec, field)
		a.axes[role][i] = axis{pos: v, target: v}
	}
}

// retarget aims role at rec, starting motion from the current drawn state.
func (a *animator) retarget(role style.Role, rec style.Record) {
	if !a.enabled {
		a.jump(role, rec)
		return
	}
	a.targets[role] = rec
	for i, field := range animatedFields {
		a.axes[role][i].target = pixelsOf(rec, field)
	}
}

// step advances one frame and reports whether anything is still moving.
func (a *animator) step() bool {
	moving := false
	for r := range a.axes {
		for i := range a.axes[r] {
			ax := &a.axes[r][i]
			if ax.pos == ax.target && ax.vel == 0 {
				continue
			}
			ax.pos, ax.vel = a.spring.Update(ax.pos, ax.vel, ax.target)
			if math.Abs(ax.pos-ax.target) < settleThreshold && math.Abs(ax.vel) < settleThreshold {
				ax.pos, ax.vel = ax.target, 0
				continue
			}
			moving = true
		}
	}
	return moving
}

func (a *animator) settled() bool {
	for r := range a.axes {
		for _, ax := range a.axes[r] {
			if ax.pos != ax.target || ax.vel != 0 {
				return false
			}
		}
	}
	return true
}

// frame returns the record to draw for role.
func (a *animator) frame(role style.Role) style.Record {
	rec := a.targets[role]
	for i, field := range animatedFields {
		setPixels(&rec, field, style.Pixels(math.Round(max(a.axes[role][i].pos, 0))))
	}
	return rec
}

func pixelsOf(rec style.Record, field style.Field) float64 {
	px, _ := rec.Get(field).(style.Pixels)
	return float64(px)
}

func setPixels(rec *style.Record, field style.Field, v style.Pixels) {
	switch field {
	case style.Padding:
		rec.Padding = v
	case style.Margin:
		rec.Margin = v
	case style.Width:
		rec.Width = v
	case style.Height:
		rec.Height = v
	}
}
