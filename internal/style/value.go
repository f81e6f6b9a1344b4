package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

// Value is a typed field value. Only the types in this package implement it.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Pixels is a length in CSS pixels.
type Pixels int

func (Pixels) Kind() Kind { return KindPixels }
func (Pixels) isValue()   {}

// String renders the value the way the slider readout shows it.
func (p Pixels) String() string {
	return strconv.Itoa(int(p)) + "px"
}

// Position is a CSS position keyword.
type Position string

const (
	PositionStatic   Position = "static"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionFixed    Position = "fixed"
)

func (Position) Kind() Kind       { return KindPosition }
func (Position) isValue()         {}
func (p Position) String() string { return string(p) }

// OutOfFlow reports whether the box is removed from normal flow.
func (p Position) OutOfFlow() bool {
	return p == PositionAbsolute || p == PositionFixed
}

// PositionOptions lists the allowed position keywords in dropdown order.
func PositionOptions() []string {
	return []string{
		string(PositionStatic),
		string(PositionRelative),
		string(PositionAbsolute),
		string(PositionFixed),
	}
}

// Display is a CSS display keyword.
type Display string

const (
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
	DisplayFlex        Display = "flex"
	DisplayGrid        Display = "grid"
)

func (Display) Kind() Kind       { return KindDisplay }
func (Display) isValue()         {}
func (d Display) String() string { return string(d) }

// DisplayOptions lists the allowed display keywords in dropdown order.
func DisplayOptions() []string {
	return []string{
		string(DisplayBlock),
		string(DisplayInline),
		string(DisplayInlineBlock),
		string(DisplayFlex),
		string(DisplayGrid),
	}
}

// Color is a background color in canonical #RRGGBB form.
type Color string

func (Color) Kind() Kind       { return KindColor }
func (Color) isValue()         {}
func (c Color) String() string { return string(c) }

// ParseColor accepts #rgb or #rrggbb in any letter case and returns the
// canonical upper-case #RRGGBB spelling.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 {
		return "", boxerrors.NewValidationError("background-color", fmt.Sprintf("%q is not a hex color", s), nil)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", boxerrors.NewValidationError("background-color", fmt.Sprintf("%q is not a hex color", s), err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful color to canonical form, clamping any
// out-of-gamut components.
func FromColorful(c colorful.Color) Color {
	return Color(strings.ToUpper(c.Clamped().Hex()))
}

// Colorful returns the color for further color-space math. Non-canonical
// values decode as black.
func (c Color) Colorful() colorful.Color {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}
	}
	return parsed
}

// Canonical reports whether c is already in #RRGGBB form.
func (c Color) Canonical() bool {
	parsed, err := ParseColor(string(c))
	return err == nil && parsed == c
}
