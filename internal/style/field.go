package style

// Kind tags the value domain of a field.
type Kind int

const (
	KindPixels Kind = iota
	KindPosition
	KindDisplay
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindPixels:
		return "pixels"
	case KindPosition:
		return "position"
	case KindDisplay:
		return "display"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Field names one of the seven properties of a Record.
type Field int

const (
	Padding Field = iota
	Margin
	Width
	Height
	PositionField
	DisplayField
	BackgroundColor
)

type fieldInfo struct {
	property string
	label    string
	kind     Kind
}

var fieldTable = [...]fieldInfo{
	Padding:         {"padding", "Padding", KindPixels},
	Margin:          {"margin", "Margin", KindPixels},
	Width:           {"width", "Width", KindPixels},
	Height:          {"height", "Height", KindPixels},
	PositionField:   {"position", "Position", KindPosition},
	DisplayField:    {"display", "Display", KindDisplay},
	BackgroundColor: {"background-color", "Background", KindColor},
}

// Fields returns every field in control-panel order.
func Fields() []Field {
	return []Field{Padding, Margin, Width, Height, PositionField, DisplayField, BackgroundColor}
}

// String returns the CSS property name.
func (f Field) String() string {
	if !f.valid() {
		return "unknown"
	}
	return fieldTable[f].property
}

// Label returns the text shown next to the field's control.
func (f Field) Label() string {
	if !f.valid() {
		return "Unknown"
	}
	return fieldTable[f].label
}

// Kind reports which value type the field accepts.
func (f Field) Kind() Kind {
	if !f.valid() {
		return -1
	}
	return fieldTable[f].kind
}

func (f Field) valid() bool {
	return f >= Padding && f <= BackgroundColor
}

// ParseField resolves a CSS property name. The camel-case spelling
// "backgroundColor" is accepted as well.
func ParseField(name string) (Field, bool) {
	if name == "backgroundColor" {
		return BackgroundColor, true
	}
	for i, info := range fieldTable {
		if info.property == name {
			return Field(i), true
		}
	}
	return 0, false
}
