package style

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", "#FF0000", false},
		{"#ff0000", "#FF0000", false},
		{"#e0ffff", "#E0FFFF", false},
		{"#abc", "#AABBCC", false},
		{"  #98fb98 ", "#98FB98", false},
		{"red", "", true},
		{"#12345", "", true},
		{"#GGGGGG", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.Canonical())
		})
	}
}

func TestFromColorfulClampsOutOfGamut(t *testing.T) {
	t.Parallel()

	got := FromColorful(colorful.Color{R: 1.4, G: -0.2, B: 0.5})
	require.Equal(t, Color("#FF0080"), got)
}

func TestPixelsString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "300px", Pixels(300).String())
	require.Equal(t, "0px", Pixels(0).String())
}

func TestPositionOutOfFlow(t *testing.T) {
	t.Parallel()

	require.False(t, PositionStatic.OutOfFlow())
	require.False(t, PositionRelative.OutOfFlow())
	require.True(t, PositionAbsolute.OutOfFlow())
	require.True(t, PositionFixed.OutOfFlow())
}

func TestOptionsAreFixed(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"static", "relative", "absolute", "fixed"}, PositionOptions())
	require.Equal(t, []string{"block", "inline", "inline-block", "flex", "grid"}, DisplayOptions())
}

func TestFieldMetadata(t *testing.T) {
	t.Parallel()

	require.Len(t, Fields(), 7)
	require.Equal(t, "background-color", BackgroundColor.String())
	require.Equal(t, "Background", BackgroundColor.Label())
	require.Equal(t, KindColor, BackgroundColor.Kind())

	f, ok := ParseField("backgroundColor")
	require.True(t, ok)
	require.Equal(t, BackgroundColor, f)

	f, ok = ParseField("width")
	require.True(t, ok)
	require.Equal(t, Width, f)

	_, ok = ParseField("border")
	require.False(t, ok)

	r, ok := ParseRole("grandchild")
	require.True(t, ok)
	require.Equal(t, Grandchild, r)
	require.Equal(t, "Grandchild", r.Title())
}
