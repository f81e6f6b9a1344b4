package style

import (
	"testing"

	"github.com/stretchr/testify/require"

	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

func TestRecordWithReplacesOnlyNamedField(t *testing.T) {
	t.Parallel()

	values := map[Field]Value{
		Padding:         Pixels(42),
		Margin:          Pixels(0),
		Width:           Pixels(450),
		Height:          Pixels(1),
		PositionField:   PositionAbsolute,
		DisplayField:    DisplayGrid,
		BackgroundColor: Color("#FF0000"),
	}

	for _, role := range Roles() {
		for field, value := range values {
			role, field, value := role, field, value
			t.Run(role.String()+"/"+field.String(), func(t *testing.T) {
				t.Parallel()

				original := Defaults(role)
				updated, err := original.With(field, value)
				require.NoError(t, err)
				require.Equal(t, value, updated.Get(field))

				for _, other := range Fields() {
					if other == field {
						continue
					}
					require.Equal(t, original.Get(other), updated.Get(other), "field %s changed", other)
				}
			})
		}
	}
}

func TestRecordWithRejectsKindMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		value Value
	}{
		{"pixels into position", PositionField, Pixels(3)},
		{"color into width", Width, Color("#FFFFFF")},
		{"display into background", BackgroundColor, DisplayFlex},
		{"nil value", Margin, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := Defaults(Parent)
			got, err := original.With(tt.field, tt.value)

			var validationErr *boxerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field.String(), validationErr.Field)
			require.Equal(t, original, got)
		})
	}
}

func TestRecordWithCurrentValueIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, role := range Roles() {
		original := Defaults(role)
		for _, field := range Fields() {
			updated, err := original.With(field, original.Get(field))
			require.NoError(t, err)
			require.Equal(t, original, updated)
		}
	}
}

func TestRecordDiff(t *testing.T) {
	t.Parallel()

	a := Defaults(Child)
	b, err := a.With(DisplayField, DisplayFlex)
	require.NoError(t, err)
	b, err = b.With(Width, Pixels(120))
	require.NoError(t, err)

	require.Equal(t, []Field{Width, DisplayField}, a.Diff(b))
	require.Empty(t, a.Diff(a))
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, Record{20, 10, 300, 300, PositionStatic, DisplayBlock, "#E0FFFF"}, Defaults(Parent))
	require.Equal(t, Record{10, 5, 100, 100, PositionStatic, DisplayBlock, "#98FB98"}, Defaults(Child))
	require.Equal(t, Record{5, 2, 50, 50, PositionStatic, DisplayBlock, "#FFB6C1"}, Defaults(Grandchild))

	for _, role := range Roles() {
		limits := LimitsFor(role)
		record := Defaults(role)
		for _, field := range Fields() {
			require.NoError(t, limits.Check(field, record.Get(field)), "%s.%s", role, field)
		}
	}
}
